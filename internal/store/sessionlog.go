package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SessionRecord is one completed session, appended on exit and read back
// by the stats command.
type SessionRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Answered   int
	Correct    int
	Wrong      int
	TotalScore float64
}

// SessionLogRepo provides append and read access to the session log.
type SessionLogRepo interface {
	// Append records a completed session.
	Append(ctx context.Context, rec SessionRecord) error

	// Recent returns up to limit sessions, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)
}

type sessionLogRepo struct {
	db *sql.DB
}

func (r *sessionLogRepo) Append(ctx context.Context, rec SessionRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_log (id, started_at, finished_at, answered, correct, wrong, total_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StartedAt, rec.FinishedAt, rec.Answered, rec.Correct, rec.Wrong, rec.TotalScore)
	if err != nil {
		return fmt.Errorf("append session %s: %w", rec.ID, err)
	}
	return nil
}

func (r *sessionLogRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, answered, correct, wrong, total_score
		 FROM session_log ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session log: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.StartedAt, &rec.FinishedAt,
			&rec.Answered, &rec.Correct, &rec.Wrong, &rec.TotalScore); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
