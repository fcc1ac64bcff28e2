package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the gin context plus a request-scoped context.Context that
// repositories receive.
type Context struct {
	*gin.Context

	Ctx context.Context

	queryErrs []string
	paramErrs []string
}

// BindFunc binds the JSON/form body into dst and checks that the named
// struct fields were provided.
func (c *Context) BindFunc(dst interface{}, required ...string) error {
	if err := c.ShouldBind(dst); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request body"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(dst)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, name := range required {
		field := v.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		if field.Kind() == reflect.Ptr && field.IsNil() {
			return NewRequestError(fmt.Errorf("field %s is required", fieldTag(v.Type(), name)), http.StatusBadRequest)
		}
		if field.Kind() != reflect.Ptr && field.IsZero() {
			return NewRequestError(fmt.Errorf("field %s is required", fieldTag(v.Type(), name)), http.StatusBadRequest)
		}
	}

	return nil
}

func fieldTag(t reflect.Type, name string) string {
	if f, ok := t.FieldByName(name); ok {
		if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return name
}

// GetQueryFunc reads an optional query parameter and returns a typed pointer.
// A missing parameter yields a typed nil pointer so callers can assign it
// directly to an optional filter field.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value := c.Query(name)

	switch kind {
	case reflect.Int:
		if value == "" {
			return (*int)(nil)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s must be an integer", name))
			return (*int)(nil)
		}
		return &n
	case reflect.Bool:
		if value == "" {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s must be a boolean", name))
			return (*bool)(nil)
		}
		return &b
	case reflect.String:
		if value == "" {
			return (*string)(nil)
		}
		return &value
	}

	return nil
}

// ValidQuery reports parse failures accumulated by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(errors.New(strings.Join(c.queryErrs, "; ")), http.StatusBadRequest)
	}
	return nil
}

// GetParam reads a path parameter as the requested kind.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Sprintf("%s must be an integer", name))
			return 0
		}
		return n
	case reflect.String:
		return value
	}

	return nil
}

// ValidParam reports parse failures accumulated by GetParam.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(errors.New(strings.Join(c.paramErrs, "; ")), http.StatusBadRequest)
	}
	return nil
}

// Respond writes data as a JSON response.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes an error response. *web.Error decides the status;
// anything else is a 500 with the raw message.
func (c *Context) RespondError(err error) error {
	status := http.StatusInternalServerError

	var reqErr *Error
	if errors.As(err, &reqErr) {
		status = reqErr.Status
	}

	c.JSON(status, gin.H{
		"error":  err.Error(),
		"status": false,
	})
	return nil
}
