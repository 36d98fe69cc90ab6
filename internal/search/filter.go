package search

import "strings"

// Page sizes used by the views.
const (
	AdminPageSize      = 10
	MemberGridPageSize = 12
)

// MatchTerm reports whether any field contains term, case-insensitively. An
// empty term matches everything.
func MatchTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Filter narrows items to those whose searchable fields contain term.
// Filtering commutes with bucket selection, so views may apply them in
// either order.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if MatchTerm(term, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}

// PageSlice returns the given 1-based page. Pages past the end are empty,
// never an error.
func PageSlice[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(n/size).
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// TableState tracks the active tab, search term, and page of one moderation
// table. Changing the tab or the term returns the table to the first page.
type TableState struct {
	Bucket string
	Term   string
	Page   int
}

func NewTableState() TableState {
	return TableState{Bucket: "all", Page: 1}
}

// SetBucket switches tabs, resetting the page when the tab actually changes.
func (s *TableState) SetBucket(name string) {
	if name == "" || name == s.Bucket {
		return
	}
	s.Bucket = name
	s.Page = 1
}

// SetTerm updates the search term, resetting the page when it changes.
func (s *TableState) SetTerm(term string) {
	if term == s.Term {
		return
	}
	s.Term = term
	s.Page = 1
}

// SetPage moves to the given page; values below 1 clamp to the first page.
func (s *TableState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}
