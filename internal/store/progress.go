package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmakise61/smartcards/internal/session"
)

// GetProgress returns the daily progress row for the given local date key.
// A date with no row yet is an empty day, not an error.
func (s *Store) GetProgress(ctx context.Context, dateKey string) (session.DailyProgress, error) {
	p := session.DailyProgress{Date: dateKey}
	err := s.db.QueryRowContext(ctx,
		`SELECT new_consumed, review_consumed FROM daily_progress WHERE date = ?`,
		dateKey).Scan(&p.NewConsumed, &p.ReviewConsumed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, nil
		}
		return p, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

// SaveProgress upserts the progress row for its date.
func (s *Store) SaveProgress(ctx context.Context, p session.DailyProgress) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_progress (date, new_consumed, review_consumed)
		 VALUES (?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   new_consumed = excluded.new_consumed,
		   review_consumed = excluded.review_consumed`,
		p.Date, p.NewConsumed, p.ReviewConsumed)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
