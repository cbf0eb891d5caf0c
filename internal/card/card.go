// Package card defines the reviewable item and its scheduling state.
package card

import (
	"time"

	"github.com/google/uuid"
)

// HistoryWindow bounds the recent rating history kept per card.
const HistoryWindow = 10

// Card is a single reviewable question/answer unit plus the scheduling
// state the review engine reads and writes. Content fields are opaque to
// the engine.
type Card struct {
	ID        string    `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Deck      string    `json:"deck"`
	HighYield bool      `json:"high_yield"`
	CreatedAt time.Time `json:"created_at"`

	Status     Status    `json:"status"`
	Interval   float64   `json:"interval"`   // days; > 0 once Status != new
	Stability  float64   `json:"stability"`  // memory model
	Difficulty float64   `json:"difficulty"` // memory model
	Ease       float64   `json:"ease"`       // classic model
	Box        int       `json:"box"`        // box model, 1..5
	Due        time.Time `json:"due"`

	Reps            int      `json:"reps"`
	Lapses          int      `json:"lapses"`
	ConsecutiveGood int      `json:"consecutive_good"`
	History         []Rating `json:"history"` // most recent last, bounded
}

// New creates a card in the new state with fresh algorithm defaults.
func New(front, back, deck string, now time.Time) Card {
	return Card{
		ID:         uuid.NewString(),
		Front:      front,
		Back:       back,
		Deck:       deck,
		CreatedAt:  now,
		Status:     StatusNew,
		Stability:  0.5,
		Difficulty: 5.0,
		Ease:       2.5,
		Box:        1,
		Due:        now,
	}
}

// Clone returns a deep copy. The history slice is copied so that pure
// scheduling functions can append without mutating the input card.
func (c Card) Clone() Card {
	out := c
	if c.History != nil {
		out.History = make([]Rating, len(c.History))
		copy(out.History, c.History)
	}
	return out
}

// RecordRating appends r to the bounded history and updates the streak
// counters the mastery classifier reads.
func (c *Card) RecordRating(r Rating) {
	c.History = append(c.History, r)
	if len(c.History) > HistoryWindow {
		c.History = c.History[len(c.History)-HistoryWindow:]
	}
	c.Reps++
	if r.Success() {
		c.ConsecutiveGood++
	} else {
		c.ConsecutiveGood = 0
		if r == Again {
			c.Lapses++
		}
	}
}

// StruggleScore returns the fraction of again/hard ratings in the recent
// history window. Returns 0 for cards with no history.
func (c *Card) StruggleScore() float64 {
	if len(c.History) == 0 {
		return 0
	}
	rough := 0
	for _, r := range c.History {
		if !r.Success() {
			rough++
		}
	}
	return float64(rough) / float64(len(c.History))
}

// IsDue reports whether the card's scheduled review time has passed.
// New cards are never "due"; they enter sessions through the new-card quota.
func (c *Card) IsDue(now time.Time) bool {
	return c.Status != StatusNew && !now.Before(c.Due)
}

// OverdueDays returns how many days past due the card is, or 0 if not due.
func (c *Card) OverdueDays(now time.Time) float64 {
	if now.Before(c.Due) {
		return 0
	}
	return now.Sub(c.Due).Hours() / 24.0
}
