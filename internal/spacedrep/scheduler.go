// Package spacedrep converts recall ratings into new scheduling state.
//
// Three interchangeable algorithms sit behind one Schedule signature:
// a stability/difficulty memory model (primary), the classic ease-factor
// model, and a fixed five-box ladder. The algorithm is selected by
// preferences; an unrecognized selector falls back to a safe fixed
// interval rather than failing mid-session.
package spacedrep

import (
	"math"
	"math/rand"
	"time"

	"github.com/kmakise61/smartcards/internal/card"
	"github.com/kmakise61/smartcards/internal/config"
)

// fallbackIntervalDays is used when the algorithm selector is unrecognized.
const fallbackIntervalDays = 1.0

// Scheduler applies a rating to a card's scheduling state.
type Scheduler struct {
	prefs config.Preferences
	rng   *rand.Rand
}

// NewScheduler creates a scheduler for the given preferences.
// Preferences are normalized so the algorithms never see unsafe values.
func NewScheduler(prefs config.Preferences) *Scheduler {
	prefs.Normalize()
	return &Scheduler{
		prefs: prefs,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Schedule returns the card's state after the rating is applied.
// The input card is not mutated; persistence is the caller's concern.
func (s *Scheduler) Schedule(c card.Card, rating card.Rating, now time.Time) card.Card {
	out := c.Clone()

	switch s.prefs.Algorithm {
	case config.AlgorithmMemory:
		s.scheduleMemory(&out, rating)
	case config.AlgorithmClassic:
		scheduleClassic(&out, rating)
	case config.AlgorithmBoxes:
		scheduleBoxes(&out, rating)
	default:
		// Unknown selector: a fixed one-day review beats losing the card.
		out.Status = card.StatusReview
		out.Interval = fallbackIntervalDays
	}

	out.RecordRating(rating)
	out.Due = dueTime(now, out.Interval)
	return out
}

// failureStatus maps a failed recall to learning, or relearning when the
// card had already reached the review cycle.
func failureStatus(prev card.Status) card.Status {
	if prev == card.StatusReview || prev == card.StatusRelearning {
		return card.StatusRelearning
	}
	return card.StatusLearning
}

// dueTime places the next review. Sub-day intervals land at wall-clock
// offsets so short relearning steps keep minute granularity; day-scale
// intervals move by calendar days.
func dueTime(now time.Time, intervalDays float64) time.Time {
	if intervalDays < 1 {
		return now.Add(time.Duration(intervalDays * 24 * float64(time.Hour)))
	}
	days := int(math.Round(intervalDays))
	if days < 1 {
		days = 1
	}
	return now.AddDate(0, 0, days)
}
