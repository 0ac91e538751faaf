package view

import (
	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/ledger"
)

// Summary holds the derived counts and score totals for a ledger.
type Summary struct {
	Answered   int
	Correct    int
	Wrong      int
	TotalScore float64
	FullScore  float64
}

// Accuracy returns the fraction of answered questions graded correct.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// Aggregate recomputes the summary with a single scan over the ledger.
// It is cheap enough to run on every read, which keeps it drift-free by
// construction.
func Aggregate(cat catalog.Catalog, led ledger.Ledger) Summary {
	var s Summary
	for i, rec := range led {
		if rec.Correct == nil {
			continue
		}
		s.Answered++
		if *rec.Correct {
			s.Correct++
			if cat.InRange(i) {
				s.TotalScore += cat.Question(i).ScoreValue()
			}
		} else {
			s.Wrong++
		}
	}
	s.FullScore = cat.FullScore()
	return s
}
