package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the conditions surfaced to the user
var (
	ErrEmptyQuery    = errors.New("empty search query")
	ErrToolNotFound  = errors.New("search tool not found")
	ErrStalePath     = errors.New("path no longer exists")
	ErrNothingToSave = errors.New("no results to save")
	ErrNotAFile      = errors.New("not a regular file")
)

// ExecError is returned when the search tool ran but failed
type ExecError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	msg := e.Err.Error()
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, stderr)
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Err }

// SelectionError is returned when an item action runs with nothing selected
type SelectionError struct {
	Verb string // e.g. "open", "copy its path"
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("no item selected to %s", e.Verb)
}
