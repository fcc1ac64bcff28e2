// Package postgresql owns the bun database handle shared by all
// repositories.
package postgresql

import (
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
)

type Database struct {
	*bun.DB
}

// NewDB opens a connection pool for the given postgres URL. queryDebug
// attaches the bundebug hook so every query is printed.
func NewDB(url string, queryDebug bool) (*Database, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(url)))

	db := bun.NewDB(sqldb, pgdialect.New())
	if queryDebug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "pinging database")
	}

	return &Database{DB: db}, nil
}

// ValidateStruct checks that the named pointer fields of request are set.
// Field names refer to the Go struct fields; messages use the json tag.
func (d *Database) ValidateStruct(request interface{}, required ...string) error {
	v := reflect.ValueOf(request)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var missing []string
	for _, name := range required {
		field := v.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		switch field.Kind() {
		case reflect.Ptr:
			if field.IsNil() {
				missing = append(missing, jsonName(v.Type(), name))
			}
		default:
			if field.IsZero() {
				missing = append(missing, jsonName(v.Type(), name))
			}
		}
	}

	if len(missing) > 0 {
		return web.NewRequestError(
			fmt.Errorf("required: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}

func jsonName(t reflect.Type, name string) string {
	if f, ok := t.FieldByName(name); ok {
		if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return name
}

// Close releases the pool.
func (d *Database) Close() error {
	return d.DB.Close()
}
