package middleware

import (
	"errors"
	"net/http"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
)

// AdminOnly gates a route behind the shared admin secret. The token may
// arrive as a query parameter, a form field, or an X-Admin-Token header;
// the check is plain string equality.
func AdminOnly(adminToken string) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(c *web.Context) error {
			token := c.Query("token")
			if token == "" {
				token = c.PostForm("token")
			}
			if token == "" {
				token = c.GetHeader("X-Admin-Token")
			}

			if token != adminToken {
				return c.RespondError(web.NewRequestError(errors.New("unauthorized"), http.StatusUnauthorized))
			}

			return handler(c)
		}

		return h
	}

	return m
}
