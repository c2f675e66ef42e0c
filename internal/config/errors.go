package config

import (
	"errors"
	"fmt"

	"github.com/dshills/keychord/internal/config/loader"
)

// Errors returned by configuration loading.
var (
	// ErrFileNotFound indicates an explicitly requested file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidKeys indicates the [keys] section failed to parse.
	ErrInvalidKeys = errors.New("invalid key bindings")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// TypeError reports a setting whose value has the wrong shape.
type TypeError struct {
	// Path is the dotted setting path.
	Path string
	// Expected describes the accepted values.
	Expected string
	// Value is the offending value.
	Value any
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %T (%v)", e.Path, e.Expected, e.Value, e.Value)
}
