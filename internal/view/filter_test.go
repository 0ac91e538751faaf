package view

import (
	"reflect"
	"testing"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/ledger"
)

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func scorePtr(f float64) *float64 { return &f }

// testCatalog has three questions; question 2 is the only one whose
// option text mentions "pacific" and it carries no score.
func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			ID:   0,
			Text: "What is the capital of France?",
			Score: scorePtr(1),
			Options: []catalog.Option{
				{Label: "A", Text: "Paris"},
				{Label: "B", Text: "Rome"},
				{Label: "C", Text: "Berlin"},
			},
			Answer: catalog.Option{Label: "A", Text: "Paris"},
		},
		{
			ID:   1,
			Text: "Which gas do plants absorb?",
			Score: scorePtr(2),
			Options: []catalog.Option{
				{Label: "A", Text: "Oxygen"},
				{Label: "B", Text: "Helium"},
				{Label: "C", Text: "Carbon dioxide"},
			},
			Answer: catalog.Option{Label: "C", Text: "Carbon dioxide"},
		},
		{
			ID:   2,
			Text: "Which ocean is the largest?",
			Options: []catalog.Option{
				{Label: "A", Text: "The Atlantic"},
				{Label: "B", Text: "The Pacific"},
			},
			Answer: catalog.Option{Label: "B", Text: "The Pacific"},
		},
	}
}

func TestVisibleIndices_AllEmptyQuery(t *testing.T) {
	cat := testCatalog()
	led := ledger.Fresh(cat.Len())

	got := VisibleIndices(cat, led, ModeAll, "")

	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("visible = %v, want [0 1 2]", got)
	}
}

func TestVisibleIndices_WrongOnlySubset(t *testing.T) {
	cat := testCatalog()
	led := ledger.Ledger{
		{Choice: strPtr("A"), Correct: boolPtr(true)},
		{Choice: strPtr("B"), Correct: boolPtr(false)},
		{},
	}

	got := VisibleIndices(cat, led, ModeWrongOnly, "")

	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("visible = %v, want [1]", got)
	}
	for _, i := range got {
		if led[i].Correct == nil || *led[i].Correct {
			t.Errorf("index %d is not a wrong answer", i)
		}
	}
}

func TestVisibleIndices_WrongOnlyEmpty(t *testing.T) {
	cat := testCatalog()
	led := ledger.Fresh(cat.Len())

	got := VisibleIndices(cat, led, ModeWrongOnly, "")

	if len(got) != 0 {
		t.Errorf("visible = %v, want empty", got)
	}
}

func TestVisibleIndices_SearchMatchesOptionText(t *testing.T) {
	cat := testCatalog()
	led := ledger.Ledger{
		{Choice: strPtr("A"), Correct: boolPtr(true)},
		{},
		{},
	}

	// Matches only question 2's option text, regardless of answer state.
	got := VisibleIndices(cat, led, ModeAll, "pacific")

	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("visible = %v, want [2]", got)
	}
}

func TestVisibleIndices_SearchMatchesQuestionText(t *testing.T) {
	cat := testCatalog()
	led := ledger.Fresh(cat.Len())

	got := VisibleIndices(cat, led, ModeAll, "CAPITAL")

	if !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("visible = %v, want [0]", got)
	}
}

func TestVisibleIndices_QueryIsTrimmed(t *testing.T) {
	cat := testCatalog()
	led := ledger.Fresh(cat.Len())

	got := VisibleIndices(cat, led, ModeAll, "   ")

	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("visible = %v, want all indices for blank query", got)
	}
}

func TestVisibleIndices_WrongOnlyIntersectsSearch(t *testing.T) {
	cat := testCatalog()
	led := ledger.Ledger{
		{Choice: strPtr("B"), Correct: boolPtr(false)},
		{Choice: strPtr("A"), Correct: boolPtr(false)},
		{Choice: strPtr("A"), Correct: boolPtr(false)},
	}

	got := VisibleIndices(cat, led, ModeWrongOnly, "ocean")

	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("visible = %v, want [2]", got)
	}
}

func TestWrongIndices(t *testing.T) {
	led := ledger.Ledger{
		{Choice: strPtr("A"), Correct: boolPtr(false)},
		{Choice: strPtr("B"), Correct: boolPtr(true)},
		{Choice: strPtr("C")},
		{Choice: strPtr("D"), Correct: boolPtr(false)},
	}

	got := WrongIndices(led)

	if !reflect.DeepEqual(got, []int{0, 3}) {
		t.Errorf("wrong = %v, want [0 3]", got)
	}
}
