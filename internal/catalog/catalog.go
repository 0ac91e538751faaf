package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog is returned when a source yields zero questions.
	ErrEmptyCatalog = errors.New("catalog contains no questions")
)

// Option is one answer choice of a question.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is a single multiple-choice question. Questions are immutable
// once loaded; Score is nil for unscored questions.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"question"`
	Score   *float64 `json:"score"`
	Options []Option `json:"options"`
	Answer  Option   `json:"answer"`
}

// ScoreValue returns the question's score, treating nil as 0.
func (q Question) ScoreValue() float64 {
	if q.Score == nil {
		return 0
	}
	return *q.Score
}

// Catalog is the ordered, immutable question list for a session.
type Catalog []Question

// Len returns the number of questions.
func (c Catalog) Len() int {
	return len(c)
}

// Question returns the question at index i. The index must be in range.
func (c Catalog) Question(i int) Question {
	return c[i]
}

// InRange reports whether i is a valid catalog index.
func (c Catalog) InRange(i int) bool {
	return i >= 0 && i < len(c)
}

// FullScore returns the sum of all question scores.
func (c Catalog) FullScore() float64 {
	var total float64
	for _, q := range c {
		total += q.ScoreValue()
	}
	return total
}

// Validate checks semantic constraints the JSON schema cannot express:
// option labels unique within a question, and the answer label matching
// exactly one option.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyCatalog
	}
	for i, q := range questions {
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if seen[opt.Label] {
				return fmt.Errorf("question %d: duplicate option label %q", i, opt.Label)
			}
			seen[opt.Label] = true
		}
		if !seen[q.Answer.Label] {
			return fmt.Errorf("question %d: answer label %q matches no option", i, q.Answer.Label)
		}
	}
	return nil
}
