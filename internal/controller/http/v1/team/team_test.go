package team_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	team_controller "github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/controller/http/v1/team"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"
)

type fakeTeam struct {
	byToken map[string]team.GetByTokenResponse
}

func (f *fakeTeam) GetByToken(_ context.Context, token string) (team.GetByTokenResponse, error) {
	response, ok := f.byToken[token]
	if !ok {
		return team.GetByTokenResponse{}, web.NewRequestError(errors.New("team not found"), http.StatusNotFound)
	}
	return response, nil
}

func newTestApp(fake *fakeTeam) *web.App {
	gin.SetMode(gin.TestMode)
	app := web.NewApp(zap.NewNop().Sugar())
	app.Get("/api/team/by-token", team_controller.NewController(fake).GetByToken)
	return app
}

func get(app *web.App, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestGetByToken(t *testing.T) {
	phone := "111"
	fake := &fakeTeam{byToken: map[string]team.GetByTokenResponse{
		"tok-1": {
			ID:      1,
			TeamID:  "T001",
			Name:    "Quantum Leap",
			College: "MIT",
			Token:   "tok-1",
			Members: []team.MemberDetail{
				{ID: 1, Name: "Alice", Phone: &phone, IsPresent: true},
				{ID: 2, Name: "Bob"},
			},
		},
	}}
	app := newTestApp(fake)

	resp := get(app, "/api/team/by-token?token=tok-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Team    team.GetByTokenResponse `json:"team"`
		Members []team.MemberDetail     `json:"members"`
		Status  bool                    `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, "T001", body.Team.TeamID)
	require.Len(t, body.Members, 2)
	assert.Equal(t, "Alice", body.Members[0].Name)
	assert.Equal(t, "Bob", body.Members[1].Name)
}

func TestGetByToken_Missing(t *testing.T) {
	app := newTestApp(&fakeTeam{})

	resp := get(app, "/api/team/by-token")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
}

func TestGetByToken_Unknown(t *testing.T) {
	app := newTestApp(&fakeTeam{})

	resp := get(app, "/api/team/by-token?token=bogus")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
