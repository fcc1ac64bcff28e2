// Package postgres holds error values shared by the repository packages.
package postgres

import "github.com/pkg/errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
