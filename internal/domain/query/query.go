// Package query implements the free-text-plus-status filter the list views
// share. Filtering is stable and pure: input order is preserved and the
// input slice is never modified.
package query

import "strings"

// All is the status/role value that matches every record.
const All = "all"

// Criteria is the pair of predicates ANDed over a collection.
type Criteria struct {
	// Search is matched case-insensitively as a substring against each of a
	// record's searchable fields. Empty matches everything.
	Search string
	// Status is compared for normalized equality against a record's
	// designated status or role field. Empty or "all" matches everything.
	Status string
}

// Normalize folds case and strips internal spaces so "On Duty", "on duty"
// and "onduty" compare equal.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}

// MatchesStatus reports whether got satisfies the want filter under
// normalization, with "all" and "" as wildcards.
func MatchesStatus(want, got string) bool {
	w := Normalize(want)
	return w == "" || w == All || w == Normalize(got)
}

// Filter returns the records matching c, in input order. fields yields a
// record's searchable text fields; status yields the field the Status
// criterion is compared against.
func Filter[T any](records []T, c Criteria, fields func(T) []string, status func(T) string) []T {
	term := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if term != "" && !matchesSearch(fields(r), term) {
			continue
		}
		if status != nil && !MatchesStatus(c.Status, status(r)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
