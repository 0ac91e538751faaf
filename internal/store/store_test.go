package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil sql.DB")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestBlobRepo_GetAbsent(t *testing.T) {
	repo := openTestStore(t).Blobs()

	_, ok, err := repo.Get(context.Background(), "blob-absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected absent blob")
	}
}

func TestBlobRepo_SetGetOverwrite(t *testing.T) {
	repo := openTestStore(t).Blobs()
	ctx := context.Background()

	if err := repo.Set(ctx, "blob-rw", `[{"choice":null,"correct":null}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "blob-rw", `[{"choice":"A","correct":true}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := repo.Get(ctx, "blob-rw")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected stored blob")
	}
	if got != `[{"choice":"A","correct":true}]` {
		t.Errorf("value = %s, want overwritten blob", got)
	}
}

func TestBlobRepo_Remove(t *testing.T) {
	repo := openTestStore(t).Blobs()
	ctx := context.Background()

	if err := repo.Set(ctx, "blob-rm", "x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Remove(ctx, "blob-rm"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "blob-rm"); ok {
		t.Error("blob still present after remove")
	}

	// Removing an absent key is not an error.
	if err := repo.Remove(ctx, "blob-rm"); err != nil {
		t.Errorf("remove absent: %v", err)
	}
}

func TestSessionLog_AppendAndRecent(t *testing.T) {
	repo := openTestStore(t).SessionLog()
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	older := SessionRecord{
		ID:         uuid.NewString(),
		StartedAt:  now.Add(-2 * time.Hour),
		FinishedAt: now.Add(-time.Hour),
		Answered:   5,
		Correct:    3,
		Wrong:      2,
		TotalScore: 3.5,
	}
	newer := SessionRecord{
		ID:         uuid.NewString(),
		StartedAt:  now.Add(-30 * time.Minute),
		FinishedAt: now,
		Answered:   8,
		Correct:    8,
		Wrong:      0,
		TotalScore: 9,
	}

	if err := repo.Append(ctx, older); err != nil {
		t.Fatalf("append older: %v", err)
	}
	if err := repo.Append(ctx, newer); err != nil {
		t.Fatalf("append newer: %v", err)
	}

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("len = %d, want >= 2", len(got))
	}
	if got[0].ID != newer.ID {
		t.Errorf("first row = %s, want newest session", got[0].ID)
	}
	if got[0].Answered != 8 || got[0].TotalScore != 9 {
		t.Errorf("row = %+v, want answered 8 score 9", got[0])
	}
}
