package session

import (
	"context"
	"errors"
	"testing"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/ledger"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/view"
)

func scorePtr(f float64) *float64 { return &f }

// staticLoader serves a fixed catalog.
type staticLoader struct {
	cat catalog.Catalog
	err error
}

func (l staticLoader) Load(ctx context.Context) (catalog.Catalog, error) {
	return l.cat, l.err
}

// memBlobs is an in-memory BlobRepo; failSet/failGet force errors.
type memBlobs struct {
	data    map[string]string
	sets    int
	removes int
	failSet bool
	failGet bool
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: map[string]string{}}
}

func (m *memBlobs) Get(ctx context.Context, key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("storage read broke")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBlobs) Set(ctx context.Context, key, value string) error {
	m.sets++
	if m.failSet {
		return errors.New("storage write broke")
	}
	m.data[key] = value
	return nil
}

func (m *memBlobs) Remove(ctx context.Context, key string) error {
	m.removes++
	delete(m.data, key)
	return nil
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			ID:    0,
			Text:  "First question",
			Score: scorePtr(1),
			Options: []catalog.Option{
				{Label: "A", Text: "right"},
				{Label: "B", Text: "wrong"},
			},
			Answer: catalog.Option{Label: "A", Text: "right"},
		},
		{
			ID:    1,
			Text:  "Second question",
			Score: scorePtr(2),
			Options: []catalog.Option{
				{Label: "A", Text: "wrong"},
				{Label: "B", Text: "right"},
			},
			Answer: catalog.Option{Label: "B", Text: "right"},
		},
		{
			ID:   2,
			Text: "Third question",
			Options: []catalog.Option{
				{Label: "A", Text: "right"},
				{Label: "B", Text: "wrong"},
			},
			Answer: catalog.Option{Label: "A", Text: "right"},
		},
	}
}

func startTestSession(t *testing.T, blobs store.BlobRepo) *Session {
	t.Helper()
	ses, err := Start(context.Background(), staticLoader{cat: testCatalog()}, Options{
		Blobs: blobs,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return ses
}

func TestStart_LoadErrorIsFatal(t *testing.T) {
	_, err := Start(context.Background(),
		staticLoader{err: errors.New("boom")},
		Options{Blobs: newMemBlobs()})

	if err == nil {
		t.Fatal("expected error when catalog load fails")
	}
}

func TestStart_FreshWhenNothingPersisted(t *testing.T) {
	ses := startTestSession(t, newMemBlobs())

	if got := len(ses.Ledger()); got != 3 {
		t.Fatalf("ledger len = %d, want 3", got)
	}
	if ses.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", ses.Cursor())
	}
}

func TestStart_MigratesPersistedState(t *testing.T) {
	blobs := newMemBlobs()
	// Persisted from a session with only two questions.
	blobs.data[store.LedgerKey] = `[{"choice":"A","correct":true},{"choice":"A","correct":false}]`

	ses := startTestSession(t, blobs)

	led := ses.Ledger()
	if len(led) != 3 {
		t.Fatalf("ledger len = %d, want 3", len(led))
	}
	if led[0].Correct == nil || !*led[0].Correct {
		t.Error("persisted grade lost in migration")
	}
	if led[2].Choice != nil || led[2].Correct != nil {
		t.Error("appended entry should be blank")
	}
}

func TestStart_CorruptBlobStartsFresh(t *testing.T) {
	blobs := newMemBlobs()
	blobs.data[store.LedgerKey] = "not json"

	ses := startTestSession(t, blobs)

	for i, rec := range ses.Ledger() {
		if rec.Choice != nil || rec.Correct != nil {
			t.Errorf("entry %d not blank: %+v", i, rec)
		}
	}
}

func TestStart_ReadFailureStartsFresh(t *testing.T) {
	blobs := newMemBlobs()
	blobs.failGet = true

	ses := startTestSession(t, blobs)

	if len(ses.Ledger()) != 3 {
		t.Fatalf("ledger len = %d, want 3", len(ses.Ledger()))
	}
}

func TestSelectAndSubmit_PersistEachMutation(t *testing.T) {
	blobs := newMemBlobs()
	ses := startTestSession(t, blobs)

	if err := ses.Select(0, "A"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := ses.Submit(0); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if blobs.sets != 2 {
		t.Errorf("persist count = %d, want 2", blobs.sets)
	}

	stored, err := ledger.Decode(blobs.data[store.LedgerKey])
	if err != nil {
		t.Fatalf("decode stored blob: %v", err)
	}
	if stored[0].Correct == nil || !*stored[0].Correct {
		t.Error("stored blob does not reflect the graded entry")
	}
}

func TestSubmit_WithoutSelection(t *testing.T) {
	blobs := newMemBlobs()
	ses := startTestSession(t, blobs)

	err := ses.Submit(1)

	if !errors.Is(err, ledger.ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if blobs.sets != 0 {
		t.Error("failed submit must not persist")
	}
	if rec := ses.Ledger()[1]; rec.Choice != nil || rec.Correct != nil {
		t.Errorf("entry changed on failed submit: %+v", rec)
	}
}

func TestSubmit_GradesAgainstCatalog(t *testing.T) {
	ses := startTestSession(t, newMemBlobs())

	// Question 1's correct label is B.
	if err := ses.Select(1, "A"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := ses.Submit(1); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rec := ses.Ledger()[1]
	if rec.Correct == nil || *rec.Correct {
		t.Errorf("correct = %v, want false", rec.Correct)
	}

	sum := ses.Summary()
	if sum.Wrong != 1 || sum.Correct != 0 {
		t.Errorf("summary = %+v, want one wrong", sum)
	}
}

func TestMutation_SurvivesPersistFailure(t *testing.T) {
	blobs := newMemBlobs()
	blobs.failSet = true
	ses := startTestSession(t, blobs)

	if err := ses.Select(0, "A"); err != nil {
		t.Fatalf("select must not surface persist failure: %v", err)
	}
	if err := ses.Submit(0); err != nil {
		t.Fatalf("submit must not surface persist failure: %v", err)
	}

	if rec := ses.Ledger()[0]; rec.Correct == nil || !*rec.Correct {
		t.Error("in-memory mutation lost when persistence failed")
	}
}

func TestReset_ClearsEntry(t *testing.T) {
	ses := startTestSession(t, newMemBlobs())

	_ = ses.Select(0, "B")
	_ = ses.Submit(0)
	if err := ses.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if rec := ses.Ledger()[0]; rec.Choice != nil || rec.Correct != nil {
		t.Errorf("entry = %+v, want blank", rec)
	}
}

func TestClearAll_RemovesBlob(t *testing.T) {
	blobs := newMemBlobs()
	ses := startTestSession(t, blobs)

	_ = ses.Select(0, "A")
	_ = ses.Submit(0)
	ses.ClearAll()

	if _, ok := blobs.data[store.LedgerKey]; ok {
		t.Error("stored blob should be removed, not overwritten")
	}
	if blobs.removes != 1 {
		t.Errorf("removes = %d, want 1", blobs.removes)
	}
	for i, rec := range ses.Ledger() {
		if rec.Choice != nil || rec.Correct != nil {
			t.Errorf("entry %d not blank after clearAll: %+v", i, rec)
		}
	}
}

func TestNavigation(t *testing.T) {
	ses := startTestSession(t, newMemBlobs())

	ses.GoNext()
	if ses.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", ses.Cursor())
	}

	ses.GoPrevious()
	ses.GoPrevious() // no-op at the start
	if ses.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", ses.Cursor())
	}

	if err := ses.Jump(2); err != nil {
		t.Fatalf("jump: %v", err)
	}
	ses.GoNext() // no-op at the end
	if ses.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", ses.Cursor())
	}

	if err := ses.Jump(7); err == nil {
		t.Error("expected error for out-of-range jump")
	}
}

func TestToggleMode_RefusedWithoutWrongAnswers(t *testing.T) {
	ses := startTestSession(t, newMemBlobs())

	if ses.ToggleMode() {
		t.Error("toggle into wrong-only must be refused with no wrong answers")
	}
	if ses.Mode() != view.ModeAll {
		t.Errorf("mode = %v, want all", ses.Mode())
	}
}

func TestToggleMode_AutoCorrectsCursor(t *testing.T) {
	ses := startTestSession(t, newMemBlobs())

	// Make question 1 wrong, leave cursor on 0.
	_ = ses.Select(1, "A")
	_ = ses.Submit(1)

	if !ses.ToggleMode() {
		t.Fatal("toggle should succeed with a wrong answer present")
	}
	if ses.Mode() != view.ModeWrongOnly {
		t.Fatalf("mode = %v, want wrong-only", ses.Mode())
	}
	if ses.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1 (first wrong index)", ses.Cursor())
	}

	// Jump outside the view is still allowed.
	if err := ses.Jump(0); err != nil {
		t.Fatalf("jump outside view: %v", err)
	}
	if ses.Position() != -1 {
		t.Errorf("position = %d, want -1 outside the view", ses.Position())
	}

	if !ses.ToggleMode() {
		t.Error("toggling back to all must always succeed")
	}
}

func TestSearchQuery(t *testing.T) {
	ses := startTestSession(t, newMemBlobs())

	ses.SetSearchQuery("second")
	if got := ses.VisibleIndices(); len(got) != 1 || got[0] != 1 {
		t.Errorf("visible = %v, want [1]", got)
	}

	ses.ClearSearch()
	if got := ses.VisibleIndices(); len(got) != 3 {
		t.Errorf("visible = %v, want all three", got)
	}
}
