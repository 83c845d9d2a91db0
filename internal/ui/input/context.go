package input

import "flashfind/internal/results"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Store *results.Store
	Busy  bool
}

// HasResults returns true if the list holds at least one path
func (c *ModelContext) HasResults() bool {
	return c.Store != nil && c.Store.Len() > 0
}

// HasSelection returns true if a row is selected
func (c *ModelContext) HasSelection() bool {
	return c.Store != nil && c.Store.SelectedIndex() != results.NoSelection
}

// Searching returns true while an fd process is running
func (c *ModelContext) Searching() bool {
	return c.Busy
}
