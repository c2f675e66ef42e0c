package keymap

import (
	"errors"
	"strings"
)

// Errors returned while building or parsing key tables.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidValue    = errors.New("invalid keymap value")
	ErrAwaitInSequence = errors.New("await-char command cannot appear in a sequence")
	ErrEmptySequence   = errors.New("empty command sequence")
	ErrInvalidKey      = errors.New("invalid key")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrDuplicateMode   = errors.New("mode defined more than once")
	ErrDuplicateName   = errors.New("duplicate command name")
)

// ParseError locates a failure inside a configuration value.
type ParseError struct {
	// Path is the chain of table keys leading to the failure.
	Path []string
	Err  error
}

func (e *ParseError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	return strings.Join(e.Path, ".") + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
