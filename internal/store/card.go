package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kmakise61/smartcards/internal/card"
)

// ErrCardNotFound is returned when a card ID has no row.
var ErrCardNotFound = errors.New("store: card not found")

const cardColumns = `id, front, back, deck, high_yield, created_at, status,
	interval, stability, difficulty, ease, box, due, reps, lapses,
	consecutive_good, history`

// InsertCard stores a freshly created card.
func (s *Store) InsertCard(ctx context.Context, c card.Card) error {
	history, err := json.Marshal(c.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cards (`+cardColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Front, c.Back, c.Deck, boolInt(c.HighYield),
		c.CreatedAt.Format(time.RFC3339Nano), string(c.Status),
		c.Interval, c.Stability, c.Difficulty, c.Ease, c.Box,
		c.Due.Format(time.RFC3339Nano), c.Reps, c.Lapses,
		c.ConsecutiveGood, string(history),
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

// UpdateScheduling writes back the fields the review engine owns.
// Content fields are left untouched.
func (s *Store) UpdateScheduling(ctx context.Context, c card.Card) error {
	history, err := json.Marshal(c.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE cards SET status = ?, interval = ?, stability = ?,
		 difficulty = ?, ease = ?, box = ?, due = ?, reps = ?, lapses = ?,
		 consecutive_good = ?, history = ? WHERE id = ?`,
		string(c.Status), c.Interval, c.Stability, c.Difficulty, c.Ease,
		c.Box, c.Due.Format(time.RFC3339Nano), c.Reps, c.Lapses,
		c.ConsecutiveGood, string(history), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update scheduling: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update scheduling: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, c.ID)
	}
	return nil
}

// ListCards returns every card, creation order first.
func (s *Store) ListCards(ctx context.Context) ([]card.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// GetCard returns a single card by ID.
func (s *Store) GetCard(ctx context.Context, id string) (card.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id)
	c, err := scanCard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return card.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, id)
		}
		return card.Card{}, err
	}
	return c, nil
}

// Wipe deletes all learner data. Used by the reset command.
func (s *Store) Wipe(ctx context.Context) error {
	for _, table := range []string{"cards", "review_events", "daily_progress"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (card.Card, error) {
	var (
		c               card.Card
		highYield       int
		createdAt, due  string
		status, history string
	)
	err := row.Scan(&c.ID, &c.Front, &c.Back, &c.Deck, &highYield,
		&createdAt, &status, &c.Interval, &c.Stability, &c.Difficulty,
		&c.Ease, &c.Box, &due, &c.Reps, &c.Lapses, &c.ConsecutiveGood,
		&history)
	if err != nil {
		return card.Card{}, err
	}
	c.HighYield = highYield != 0
	c.Status = card.Status(status)
	if c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return card.Card{}, fmt.Errorf("parse created_at: %w", err)
	}
	if c.Due, err = time.Parse(time.RFC3339Nano, due); err != nil {
		return card.Card{}, fmt.Errorf("parse due: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &c.History); err != nil {
		return card.Card{}, fmt.Errorf("parse history: %w", err)
	}
	return c, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
