package team

import (
	"errors"
	"net/http"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
)

type Controller struct {
	team Team
}

func NewController(team Team) *Controller {
	return &Controller{team}
}

// GetByToken resolves a team and its roster from a scanned token.
func (tc Controller) GetByToken(c *web.Context) error {
	token := c.Query("token")
	if token == "" {
		return c.RespondError(web.NewRequestError(errors.New("token parameter is required"), http.StatusBadRequest))
	}

	response, err := tc.team.GetByToken(c.Ctx, token)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"team":    response,
		"members": response.Members,
		"status":  true,
	}, http.StatusOK)
}
