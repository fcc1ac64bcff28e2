// Package web is a small toolkit on top of gin. Handlers take a *Context and
// return an error; the framework turns returned errors into JSON responses.
package web

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ctxKey is how request values are stored on the context.
type ctxKey int

const requestIDKey ctxKey = 1

// Handler is the signature every application handler implements.
type Handler func(c *Context) error

// Middleware wraps a Handler with additional behavior.
type Middleware func(Handler) Handler

// App wraps a gin engine and binds Handler-style routes to it.
type App struct {
	*gin.Engine

	log *zap.SugaredLogger
}

func NewApp(log *zap.SugaredLogger) *App {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &App{Engine: engine, log: log}
}

// RequestID returns the request id attached to ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (a *App) handle(method, route string, handler Handler, mw ...Middleware) {
	handler = wrapMiddleware(mw, handler)

	a.Engine.Handle(method, route, func(gc *gin.Context) {
		start := time.Now()

		requestID := uuid.NewString()
		ctx := context.WithValue(gc.Request.Context(), requestIDKey, requestID)

		c := &Context{Context: gc, Ctx: ctx}

		if err := handler(c); err != nil && !gc.Writer.Written() {
			// Handlers normally respond before returning; anything left
			// here is a framework-level failure.
			c.RespondError(err)
		}

		if a.log != nil {
			a.log.Infow("request",
				"request_id", requestID,
				"method", method,
				"path", gc.Request.URL.Path,
				"status", gc.Writer.Status(),
				"duration", time.Since(start),
			)
		}
	})
}

func (a *App) Get(route string, handler Handler, mw ...Middleware)    { a.handle("GET", route, handler, mw...) }
func (a *App) Post(route string, handler Handler, mw ...Middleware)   { a.handle("POST", route, handler, mw...) }
func (a *App) Put(route string, handler Handler, mw ...Middleware)    { a.handle("PUT", route, handler, mw...) }
func (a *App) Patch(route string, handler Handler, mw ...Middleware)  { a.handle("PATCH", route, handler, mw...) }
func (a *App) Delete(route string, handler Handler, mw ...Middleware) { a.handle("DELETE", route, handler, mw...) }

func wrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			handler = mw[i](handler)
		}
	}
	return handler
}
