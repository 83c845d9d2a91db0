package results

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"flashfind/internal/domain"
)

// NoSelection is the selection index when no item is selected
const NoSelection = -1

// Store holds the current result set and the single selected index.
// It is owned by the UI loop and is not safe for concurrent use.
type Store struct {
	items    domain.ResultSet
	selected int
}

// NewStore creates an empty store with no selection
func NewStore() *Store {
	return &Store{selected: NoSelection}
}

// Replace discards the current results and selection and installs a new set
func (s *Store) Replace(items domain.ResultSet) {
	s.items = append(domain.ResultSet(nil), items...)
	s.selected = NoSelection
}

// Clear empties the result list and drops the selection
func (s *Store) Clear() {
	s.items = nil
	s.selected = NoSelection
}

// Items returns a copy of the results in display order
func (s *Store) Items() domain.ResultSet {
	return append(domain.ResultSet(nil), s.items...)
}

// Len returns the number of results
func (s *Store) Len() int {
	return len(s.items)
}

// At returns the result at index i
func (s *Store) At(i int) (string, bool) {
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	return s.items[i], true
}

// Select sets the selection; out-of-range indices are ignored
func (s *Store) Select(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.selected = i
	return true
}

// ClearSelection drops the selection without touching the results
func (s *Store) ClearSelection() {
	s.selected = NoSelection
}

// SelectedIndex returns the selected index or NoSelection
func (s *Store) SelectedIndex() int {
	return s.selected
}

// Selected returns the selected path
func (s *Store) Selected() (string, bool) {
	return s.At(s.selected)
}

// Move shifts the selection by delta, clamping at both ends.
// Without a selection, moving down selects the first item and moving up the last.
func (s *Store) Move(delta int) {
	n := len(s.items)
	if n == 0 || delta == 0 {
		return
	}
	var next int
	switch {
	case s.selected == NoSelection && delta > 0:
		next = delta - 1
	case s.selected == NoSelection:
		next = n + delta
	default:
		next = s.selected + delta
	}
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	s.selected = next
}

// WriteTo writes one path per line in display order
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for _, item := range s.items {
		n, err := bw.WriteString(item + "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// SaveToFile creates or truncates path and writes the results to it
func (s *Store) SaveToFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
