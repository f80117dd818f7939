package pipeline

import "strings"

// Query holds the optional search terms for a run. At least one must be
// set for the query to be usable.
type Query struct {
	Name    string
	Company string
	Role    string
}

// Terms concatenates the non-empty terms into the free-text search string
// sent to the search API, in name, company, role order.
func (q Query) Terms() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{q.Name, q.Company, q.Role} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Empty reports whether no search term is set.
func (q Query) Empty() bool {
	return q.Terms() == ""
}
