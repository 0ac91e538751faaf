// Package ledger holds the per-question answer state for a session.
//
// A Ledger is position-correlated with the catalog: entry i records the
// answer state of catalog question i. Mutations never write in place;
// each operation returns a fresh snapshot and the caller replaces its
// reference, so concurrent readers of an old snapshot never observe a
// torn write.
package ledger

import "errors"

// ErrNoSelection is returned by Submit when no option has been selected.
// It is recoverable: the entry is left untouched and the caller surfaces
// a transient hint.
var ErrNoSelection = errors.New("no option selected")

// Record is the answer state of a single question.
//
// Correct is nil until the entry is submitted; once set it reflects
// whether Choice equalled the correct label at submit time. Choice may
// be non-nil while Correct is nil (selected but not yet submitted).
type Record struct {
	Choice  *string `json:"choice"`
	Correct *bool   `json:"correct"`
}

// Answered reports whether the entry has been graded.
func (r Record) Answered() bool {
	return r.Correct != nil
}

// Ledger is an ordered sequence of Records, one per catalog index.
type Ledger []Record

// Fresh returns a ledger of n blank records.
func Fresh(n int) Ledger {
	return make(Ledger, n)
}

// clone returns a copy sharing no backing storage with l.
func (l Ledger) clone() Ledger {
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// Select returns a snapshot with entry i's choice set to label. Grading
// is left untouched: re-selecting after a submit does not retroactively
// change correctness. The index must be in range.
func (l Ledger) Select(i int, label string) Ledger {
	out := l.clone()
	out[i].Choice = &label
	return out
}

// Submit grades entry i against correctLabel and returns the new
// snapshot. If no choice has been made it returns the ledger unchanged
// along with ErrNoSelection. Submitting an already-graded entry
// recomputes the same verdict; single-submission is the caller's
// contract, not enforced here.
func (l Ledger) Submit(i int, correctLabel string) (Ledger, error) {
	if l[i].Choice == nil {
		return l, ErrNoSelection
	}
	out := l.clone()
	verdict := *out[i].Choice == correctLabel
	out[i].Correct = &verdict
	return out, nil
}

// Reset returns a snapshot with entry i cleared back to blank.
func (l Ledger) Reset(i int) Ledger {
	out := l.clone()
	out[i] = Record{}
	return out
}
