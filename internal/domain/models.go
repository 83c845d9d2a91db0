package domain

import "strings"

// Query is a single search request handed to the external search tool
type Query struct {
	Pattern string
	Regex   bool // pass --regex to fd
}

// NewQuery builds a query from raw user input
func NewQuery(input string, regex bool) Query {
	return Query{
		Pattern: strings.TrimSpace(input),
		Regex:   regex,
	}
}

// IsEmpty reports whether the query has nothing to search for
func (q Query) IsEmpty() bool {
	return q.Pattern == ""
}

// ResultSet is the ordered list of paths produced by one search,
// exactly as the tool printed them
type ResultSet []string

// Len returns the number of results
func (r ResultSet) Len() int {
	return len(r)
}
