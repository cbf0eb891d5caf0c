package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kmakise61/smartcards/internal/activity"
	"github.com/kmakise61/smartcards/internal/card"
)

// ReviewEventData is one appended entry of the review log: the rating plus
// the interval transition it produced.
type ReviewEventData struct {
	CardID       string
	Rating       card.Rating
	Timestamp    time.Time
	PrevInterval float64
	NewInterval  float64
}

// AppendReviewEvent records a completed review. The log is append-only;
// events are never updated or reordered.
func (s *Store) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO review_events (card_id, rating, recorded_at, prev_interval, new_interval)
		 VALUES (?, ?, ?, ?, ?)`,
		data.CardID, data.Rating.String(),
		data.Timestamp.Format(time.RFC3339Nano),
		data.PrevInterval, data.NewInterval,
	)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

// RecentEvents returns review events recorded at or after since, oldest
// first, shaped for the activity tracker. Timestamps come back as the raw
// stored strings; the tracker normalizes them at its own boundary.
func (s *Store) RecentEvents(ctx context.Context, since time.Time) ([]activity.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT card_id, rating, recorded_at FROM review_events
		 WHERE recorded_at >= ? ORDER BY id`,
		since.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	defer rows.Close()

	var events []activity.Event
	for rows.Next() {
		var (
			ev         activity.Event
			rating     string
			recordedAt string
		)
		if err := rows.Scan(&ev.CardID, &rating, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		// Malformed ratings in old rows are tolerated; the tracker only
		// needs the timestamp.
		if r, err := card.ParseRating(rating); err == nil {
			ev.Rating = r
		}
		ev.Timestamp = recordedAt
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	return events, nil
}

// CountReviews returns the total number of logged reviews.
func (s *Store) CountReviews(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM review_events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}
