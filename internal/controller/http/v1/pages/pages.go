// Package pages serves the browser-facing HTML: the landing page, the scan
// page a QR code resolves to, and the live dashboard.
package pages

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/pkg/errors"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
)

//go:embed templates/*.html
var templateFS embed.FS

type Controller struct {
	team       Team
	adminToken string
	baseURL    string
	templates  *template.Template
}

func NewController(team Team, adminToken, baseURL string) (*Controller, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing page templates")
	}

	return &Controller{
		team:       team,
		adminToken: adminToken,
		baseURL:    baseURL,
		templates:  templates,
	}, nil
}

func (pc Controller) render(c *web.Context, name string, data interface{}) error {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pc.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		return c.RespondError(errors.Wrap(err, "rendering page"))
	}
	return nil
}

// Index is the landing page. Admin links appear when the token query
// parameter equals the configured admin secret (plain equality).
func (pc Controller) Index(c *web.Context) error {
	token := c.Query("token")

	return pc.render(c, "index.html", map[string]interface{}{
		"IsAdmin":    token == pc.adminToken,
		"AdminToken": token,
		"BaseURL":    pc.baseURL,
	})
}

// Scan shows a team's roster and the in/out controls for a scanned token.
func (pc Controller) Scan(c *web.Context) error {
	token := c.Query("t")
	if token == "" {
		return pc.render(c, "scan.html", map[string]interface{}{
			"Error": "No token provided",
		})
	}

	detail, err := pc.team.GetByToken(c.Ctx, token)
	if err != nil {
		return pc.render(c, "scan.html", map[string]interface{}{
			"Error": "Invalid token",
		})
	}

	return pc.render(c, "scan.html", map[string]interface{}{
		"Team":    detail,
		"Members": detail.Members,
	})
}

// Dashboard serves the reporting view; the page itself polls /api/stats.
func (pc Controller) Dashboard(c *web.Context) error {
	return pc.render(c, "dashboard.html", nil)
}
