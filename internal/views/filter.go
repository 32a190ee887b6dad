package views

import "strings"

// All is the sentinel criterion value meaning "no constraint on this
// dimension".
const All = "all"

// Filterable is implemented by entities that can be narrowed by dimension
// criteria and free-text search.
type Filterable interface {
	// Field returns the entity's value for a filter dimension; unknown
	// dimensions return "".
	Field(name string) string
	// SearchFields returns the values matched by free-text search.
	SearchFields() []string
}

// Criteria selects a subset of a collection. Every dimension combines with
// logical AND; the search text, when non-empty, must appear as a
// case-insensitive substring in at least one search field.
type Criteria struct {
	Fields map[string]string
	Search string
}

// Filter returns the records matching the criteria, in input order. It is
// pure: the input is never mutated and the result is recomputed on every
// call.
func Filter[T Filterable](records []T, criteria Criteria) []T {
	needle := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if !matchesFields(rec, criteria.Fields) {
			continue
		}
		if needle != "" && !matchesSearch(rec, needle) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesFields[T Filterable](rec T, fields map[string]string) bool {
	for dim, want := range fields {
		if want == All || want == "" {
			continue
		}
		if rec.Field(dim) != want {
			return false
		}
	}
	return true
}

func matchesSearch[T Filterable](rec T, needle string) bool {
	for _, field := range rec.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
