package attendance

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/attendance"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

// TeamAction marks a team in or out by token.
func (ac Controller) TeamAction(c *web.Context) error {
	var request attendance.TeamActionRequest
	if err := c.BindFunc(&request, "Token", "Action"); err != nil {
		return c.RespondError(err)
	}

	response, err := ac.attendance.SetTeamPresence(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":    response,
		"success": true,
		"action":  response.Action,
		"status":  true,
	}, http.StatusOK)
}

// MemberAction marks a member in or out by id.
func (ac Controller) MemberAction(c *web.Context) error {
	var request attendance.MemberActionRequest
	if err := c.BindFunc(&request, "MemberID", "Action"); err != nil {
		return c.RespondError(err)
	}

	response, err := ac.attendance.SetMemberPresence(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":    response,
		"success": true,
		"action":  response.Action,
		"status":  true,
	}, http.StatusOK)
}

// GetStatistics serves the dashboard aggregates.
func (ac Controller) GetStatistics(c *web.Context) error {
	response, err := ac.attendance.GetStatistics(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(response, http.StatusOK)
}

func (ac Controller) logFilter(c *web.Context) (attendance.LogFilter, error) {
	var filter attendance.LogFilter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidQuery(); err != nil {
		return attendance.LogFilter{}, err
	}

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := date.ParseDate(dateStr)
		if err != nil {
			return attendance.LogFilter{}, web.NewRequestError(errors.New("invalid date format, expected YYYY-MM-DD"), http.StatusBadRequest)
		}
		filter.Date = &parsed
	}

	return filter, nil
}

// GetTeamLog lists the team audit trail.
func (ac Controller) GetTeamLog(c *web.Context) error {
	filter, err := ac.logFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, count, err := ac.attendance.GetTeamLog(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

// GetMemberLog lists the member audit trail.
func (ac Controller) GetMemberLog(c *web.Context) error {
	filter, err := ac.logFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, count, err := ac.attendance.GetMemberLog(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}
