package attendance_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	attendance_controller "github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/controller/http/v1/attendance"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/attendance"
)

type fakeAttendance struct {
	lastTeamRequest   attendance.TeamActionRequest
	lastMemberRequest attendance.MemberActionRequest
	lastFilter        attendance.LogFilter

	teamErr   error
	memberErr error

	stats attendance.GetStatisticsResponse
}

func (f *fakeAttendance) SetTeamPresence(_ context.Context, request attendance.TeamActionRequest) (attendance.ActionResponse, error) {
	f.lastTeamRequest = request
	if f.teamErr != nil {
		return attendance.ActionResponse{}, f.teamErr
	}
	byWho := attendance.DefaultActor
	if request.ByWho != nil {
		byWho = *request.ByWho
	}
	return attendance.ActionResponse{
		TeamID:    "T001",
		Action:    *request.Action,
		ByWho:     byWho,
		IsPresent: *request.Action == attendance.ActionIn,
		At:        time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeAttendance) SetMemberPresence(_ context.Context, request attendance.MemberActionRequest) (attendance.ActionResponse, error) {
	f.lastMemberRequest = request
	if f.memberErr != nil {
		return attendance.ActionResponse{}, f.memberErr
	}
	return attendance.ActionResponse{
		MemberID:  *request.MemberID,
		Action:    *request.Action,
		ByWho:     attendance.DefaultActor,
		IsPresent: *request.Action == attendance.ActionIn,
		At:        time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeAttendance) GetStatistics(_ context.Context) (attendance.GetStatisticsResponse, error) {
	return f.stats, nil
}

func (f *fakeAttendance) GetTeamLog(_ context.Context, filter attendance.LogFilter) ([]attendance.TeamLogRow, int, error) {
	f.lastFilter = filter
	return []attendance.TeamLogRow{{ID: 1, TeamID: "T001", TeamName: "Quantum Leap", Action: "in", ByWho: "volunteer"}}, 1, nil
}

func (f *fakeAttendance) GetMemberLog(_ context.Context, filter attendance.LogFilter) ([]attendance.MemberLogRow, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func newTestApp(fake *fakeAttendance) *web.App {
	gin.SetMode(gin.TestMode)
	app := web.NewApp(zap.NewNop().Sugar())

	controller := attendance_controller.NewController(fake)
	app.Post("/api/team/action", controller.TeamAction)
	app.Post("/api/member/action", controller.MemberAction)
	app.Get("/api/stats", controller.GetStatistics)
	app.Get("/api/logs/team", controller.GetTeamLog)
	app.Get("/api/logs/member", controller.GetMemberLog)

	return app
}

func postJSON(t *testing.T, app *web.App, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestTeamAction(t *testing.T) {
	fake := &fakeAttendance{}
	app := newTestApp(fake)

	resp := postJSON(t, app, "/api/team/action", `{"token":"tok-1","action":"in","by_who":"volunteer"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data    attendance.ActionResponse `json:"data"`
		Success bool                      `json:"success"`
		Action  string                    `json:"action"`
		Status  bool                      `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "in", body.Action)
	assert.True(t, body.Data.IsPresent)
	assert.Equal(t, "volunteer", body.Data.ByWho)

	require.NotNil(t, fake.lastTeamRequest.Token)
	assert.Equal(t, "tok-1", *fake.lastTeamRequest.Token)
}

func TestTeamAction_MissingFields(t *testing.T) {
	app := newTestApp(&fakeAttendance{})

	resp := postJSON(t, app, "/api/team/action", `{"token":"tok-1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
}

func TestTeamAction_UnknownToken(t *testing.T) {
	fake := &fakeAttendance{teamErr: web.NewRequestError(errors.New("team not found"), http.StatusNotFound)}
	app := newTestApp(fake)

	resp := postJSON(t, app, "/api/team/action", `{"token":"bogus","action":"in"}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMemberAction(t *testing.T) {
	fake := &fakeAttendance{}
	app := newTestApp(fake)

	resp := postJSON(t, app, "/api/member/action", `{"member_id":7,"action":"out"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data attendance.ActionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 7, body.Data.MemberID)
	assert.False(t, body.Data.IsPresent, "marking out must clear presence")
	assert.Equal(t, attendance.DefaultActor, body.Data.ByWho)
}

func TestMemberAction_MissingID(t *testing.T) {
	app := newTestApp(&fakeAttendance{})

	resp := postJSON(t, app, "/api/member/action", `{"action":"in"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetStatistics(t *testing.T) {
	phone := "111"
	fake := &fakeAttendance{
		stats: attendance.GetStatisticsResponse{
			Teams:   attendance.Counts{Total: 2, Present: 1},
			Members: attendance.Counts{Total: 5, Present: 3},
			TeamList: []attendance.StatsTeam{
				{
					TeamID:         "T001",
					Name:           "Quantum Leap",
					IsPresent:      true,
					MemberCount:    2,
					MembersPresent: 1,
					Members: []attendance.StatsMember{
						{ID: 1, Name: "Alice", Phone: &phone, IsPresent: true},
						{ID: 2, Name: "Bob", IsPresent: false},
					},
				},
			},
		},
	}
	app := newTestApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var body attendance.GetStatisticsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Teams.Total)
	assert.Equal(t, 3, body.Members.Present)
	require.Len(t, body.TeamList, 1)
	assert.Equal(t, len(body.TeamList[0].Members), body.TeamList[0].MemberCount)
}

func TestGetTeamLog_Filter(t *testing.T) {
	fake := &fakeAttendance{}
	app := newTestApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/logs/team?limit=10&page=2&date=2026-01-10", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	require.NotNil(t, fake.lastFilter.Limit)
	assert.Equal(t, 10, *fake.lastFilter.Limit)
	require.NotNil(t, fake.lastFilter.Page)
	assert.Equal(t, 2, *fake.lastFilter.Page)
	require.NotNil(t, fake.lastFilter.Date)
	assert.Equal(t, "2026-01-10", fake.lastFilter.Date.String())

	var body struct {
		Data struct {
			Results []attendance.TeamLogRow `json:"results"`
			Count   int                     `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Count)
	require.Len(t, body.Data.Results, 1)
	assert.Equal(t, "Quantum Leap", body.Data.Results[0].TeamName)
}

func TestGetTeamLog_BadDate(t *testing.T) {
	app := newTestApp(&fakeAttendance{})

	req := httptest.NewRequest(http.MethodGet, "/api/logs/team?date=sunday", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetMemberLog_BadLimit(t *testing.T) {
	app := newTestApp(&fakeAttendance{})

	req := httptest.NewRequest(http.MethodGet, "/api/logs/member?limit=ten", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
