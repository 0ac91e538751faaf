package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LedgerKey identifies the serialized answer ledger blob.
const LedgerKey = "quizdeck.answers"

// BlobRepo is the key-value persistence backend for session state. The
// stored copy is a cache of the in-memory ledger, never the source of
// truth; callers log and swallow write failures rather than letting them
// block a mutation.
type BlobRepo interface {
	// Get returns the value for key; the bool is false when absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error
}

type blobRepo struct {
	db *sql.DB
}

func (r *blobRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get blob %q: %w", key, err)
	}
	return value, true, nil
}

func (r *blobRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("set blob %q: %w", key, err)
	}
	return nil
}

func (r *blobRepo) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("remove blob %q: %w", key, err)
	}
	return nil
}
