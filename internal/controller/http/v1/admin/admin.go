package admin

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/service/importer"
)

type Controller struct {
	importer Importer
	teams    Teams
	qr       QRRenderer
}

func NewController(imp Importer, teams Teams, qr QRRenderer) *Controller {
	return &Controller{importer: imp, teams: teams, qr: qr}
}

// ImportForm serves the minimal upload form for manual imports.
func (ac Controller) ImportForm(c *web.Context) error {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, `<form method="post" enctype="multipart/form-data">
	<input type="hidden" name="token" value="%s">
	<input type="file" name="file" accept=".csv,.xlsx" required>
	<button type="submit">Import</button>
</form>`, template.HTMLEscapeString(c.Query("token")))
	return nil
}

// ImportRoster accepts a multipart CSV or XLSX file and runs the import.
// Row-level failures are reported in the summary; only a failure to read
// the file itself aborts the request.
func (ac Controller) ImportRoster(c *web.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("file is required"), http.StatusBadRequest))
	}

	file, err := header.Open()
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "opening upload"), http.StatusBadRequest))
	}
	defer file.Close()

	rows, parseErrs, err := importer.ParseFile(header.Filename, file)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "parsing roster"), http.StatusBadRequest))
	}

	summary := ac.importer.ImportRoster(c.Ctx, rows)
	summary.RowErrors = append(parseErrs, summary.RowErrors...)

	return c.Respond(map[string]interface{}{
		"success":          true,
		"teams_imported":   summary.TeamsImported,
		"members_imported": summary.MembersImported,
		"members_skipped":  summary.MembersSkipped,
		"row_errors":       summary.RowErrors,
		"status":           true,
	}, http.StatusOK)
}

// GenerateQRs renders an HTML page with one QR code per team, embedded as
// PNG data URIs so the page prints standalone.
func (ac Controller) GenerateQRs(c *web.Context) error {
	teams, err := ac.teams.GetQRList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<title>Team QR Codes</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
.qr-item { margin-bottom: 30px; border: 1px solid #ccc; padding: 15px; }
@media print { .qr-item { page-break-inside: avoid; } }
</style>
</head>
<body>
<h1>Team QR Codes</h1>
`)

	for _, t := range teams {
		png, err := ac.qr.RenderToken(t.Token)
		if err != nil {
			return c.RespondError(err)
		}

		fmt.Fprintf(&b, `<div class="qr-item">
<h3>%s - %s</h3>
<p><strong>Scan URL:</strong> %s</p>
<img src="data:image/png;base64,%s" alt="QR for %s">
</div>
`,
			template.HTMLEscapeString(t.TeamID),
			template.HTMLEscapeString(t.Name),
			template.HTMLEscapeString(ac.qr.ScanURL(t.Token)),
			base64.StdEncoding.EncodeToString(png),
			template.HTMLEscapeString(t.TeamID),
		)
	}

	b.WriteString("</body></html>")

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, b.String())
	return nil
}

// GetQR serves one team's QR code as a PNG.
func (ac Controller) GetQR(c *web.Context) error {
	teamID := c.Query("team_id")
	if teamID == "" {
		return c.RespondError(web.NewRequestError(errors.New("team_id parameter is required"), http.StatusBadRequest))
	}

	token, err := ac.teams.GetTokenByTeamID(c.Ctx, teamID)
	if err != nil {
		return c.RespondError(err)
	}

	png, err := ac.qr.RenderToken(token)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.png", teamID))
	c.Data(http.StatusOK, "image/png", png)
	return nil
}

// GetQRSheet serves the printable PDF with every team's QR code.
func (ac Controller) GetQRSheet(c *web.Context) error {
	teams, err := ac.teams.GetQRList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	pdf, err := ac.qr.Sheet(teams)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="qr_teams.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
	return nil
}
