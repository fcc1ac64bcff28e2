package web_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
)

func newApp() *web.App {
	gin.SetMode(gin.TestMode)
	return web.NewApp(zap.NewNop().Sugar())
}

func TestBindFunc_RequiredPointerField(t *testing.T) {
	type payload struct {
		Token  *string `json:"token"`
		Action *string `json:"action"`
	}

	app := newApp()
	app.Post("/bind", func(c *web.Context) error {
		var p payload
		if err := c.BindFunc(&p, "Token", "Action"); err != nil {
			return c.RespondError(err)
		}
		return c.Respond(map[string]interface{}{"status": true}, http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{"token":"tok-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "action", "error must name the json tag, not the Go field")
}

func TestGetQueryFunc(t *testing.T) {
	app := newApp()
	app.Get("/q", func(c *web.Context) error {
		limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
		require.True(t, ok, "absent int param must still be a typed *int")

		if err := c.ValidQuery(); err != nil {
			return c.RespondError(err)
		}

		out := map[string]interface{}{"status": true}
		if limit != nil {
			out["limit"] = *limit
		}
		return c.Respond(out, http.StatusOK)
	})

	t.Run("absent", func(t *testing.T) {
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/q", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.NotContains(t, resp.Body.String(), "limit")
	})

	t.Run("present", func(t *testing.T) {
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/q?limit=25", nil))
		require.Equal(t, http.StatusOK, resp.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, float64(25), body["limit"])
	})

	t.Run("invalid", func(t *testing.T) {
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/q?limit=lots", nil))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestRespondError_StatusMapping(t *testing.T) {
	app := newApp()
	app.Get("/notfound", func(c *web.Context) error {
		return c.RespondError(web.NewRequestError(errors.New("team not found"), http.StatusNotFound))
	})
	app.Get("/boom", func(c *web.Context) error {
		return c.RespondError(errors.New("db gone"))
	})

	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/notfound", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "team not found", body["error"])
	assert.Equal(t, false, body["status"])

	resp = httptest.NewRecorder()
	app.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestRequestID(t *testing.T) {
	app := newApp()

	var got string
	app.Get("/id", func(c *web.Context) error {
		got = web.RequestID(c.Ctx)
		return c.Respond(map[string]interface{}{"status": true}, http.StatusOK)
	})

	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/id", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, got)
}

func TestMiddlewareOrder(t *testing.T) {
	app := newApp()

	var order []string
	mw := func(name string) web.Middleware {
		return func(next web.Handler) web.Handler {
			return func(c *web.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app.Get("/mw", func(c *web.Context) error {
		order = append(order, "handler")
		return c.Respond(map[string]interface{}{"status": true}, http.StatusOK)
	}, mw("outer"), mw("inner"))

	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/mw", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
