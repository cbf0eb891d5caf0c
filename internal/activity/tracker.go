// Package activity aggregates the review-event log into per-day counts
// and the current study streak.
package activity

import (
	"time"

	"github.com/kmakise61/smartcards/internal/card"
)

// HeatmapWindowDays is the rolling window the heatmap covers.
const HeatmapWindowDays = 365

// Event is one entry of the append-only review log. Timestamp may arrive
// in any of the shapes EventDateKey accepts; malformed entries are skipped
// during aggregation rather than failing it.
type Event struct {
	CardID    string
	Rating    card.Rating
	Timestamp any
}

// Heatmap returns per-local-date review counts for the rolling one-year
// window ending at now. Re-running it over the same log yields identical
// results, so callers can recompute on every log update.
func Heatmap(events []Event, now time.Time) map[string]int {
	loc := now.Location()
	cutoff := DateKey(now.AddDate(0, 0, -HeatmapWindowDays), loc)
	today := DateKey(now, loc)

	counts := make(map[string]int)
	for _, ev := range events {
		key, ok := EventDateKey(ev.Timestamp, loc)
		if !ok {
			continue
		}
		if key < cutoff || key > today {
			continue
		}
		counts[key]++
	}
	return counts
}

// Streak returns the current run of consecutive active calendar days.
// A day is active when at least one review was completed on it. If today
// has no activity yet the walk starts from yesterday, so a streak is not
// broken before the learner has had a chance to study today.
func Streak(events []Event, now time.Time) int {
	loc := now.Location()

	active := make(map[string]bool)
	for _, ev := range events {
		if key, ok := EventDateKey(ev.Timestamp, loc); ok {
			active[key] = true
		}
	}

	day := now
	if !active[DateKey(day, loc)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[DateKey(day, loc)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
