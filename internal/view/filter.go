// Package view derives presentation state from the catalog and ledger.
//
// Everything here is a pure function of its inputs, recomputed on demand
// rather than cached, so there is no stale state to invalidate.
package view

import (
	"strings"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/ledger"
)

// Mode selects which questions are in scope.
type Mode int

const (
	// ModeAll shows every question.
	ModeAll Mode = iota
	// ModeWrongOnly restricts the view to incorrectly answered questions.
	ModeWrongOnly
)

// String returns the mode name for logging.
func (m Mode) String() string {
	if m == ModeWrongOnly {
		return "wrong-only"
	}
	return "all"
}

// WrongIndices returns the catalog indices graded incorrect, ascending.
func WrongIndices(led ledger.Ledger) []int {
	var out []int
	for i, rec := range led {
		if rec.Correct != nil && !*rec.Correct {
			out = append(out, i)
		}
	}
	return out
}

// VisibleIndices computes the catalog indices in scope under mode and
// query, in ascending order without duplicates. An empty (or blank)
// query means no text filter. In wrong-only mode a non-empty query
// further restricts the wrong set to matching questions.
func VisibleIndices(cat catalog.Catalog, led ledger.Ledger, mode Mode, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))

	searchIndices := make([]int, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		if query == "" || matchesQuery(cat.Question(i), query) {
			searchIndices = append(searchIndices, i)
		}
	}

	if mode != ModeWrongOnly {
		return searchIndices
	}

	base := WrongIndices(led)
	if query == "" {
		if base == nil {
			return []int{}
		}
		return base
	}

	matched := make(map[int]bool, len(searchIndices))
	for _, i := range searchIndices {
		matched[i] = true
	}
	out := make([]int, 0, len(base))
	for _, i := range base {
		if matched[i] {
			out = append(out, i)
		}
	}
	return out
}

// matchesQuery reports whether the lowercased question text, or the
// space-joined lowercased option texts, contain query as a substring.
// query must already be lowercased and trimmed.
func matchesQuery(q catalog.Question, query string) bool {
	if strings.Contains(strings.ToLower(q.Text), query) {
		return true
	}
	texts := make([]string, len(q.Options))
	for i, opt := range q.Options {
		texts[i] = strings.ToLower(opt.Text)
	}
	return strings.Contains(strings.Join(texts, " "), query)
}
