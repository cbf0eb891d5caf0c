// Package session selects, orders and live-requeues cards for one study
// session under the daily quotas.
package session

import (
	"sort"
	"time"

	"github.com/kmakise61/smartcards/internal/card"
	"github.com/kmakise61/smartcards/internal/config"
	"github.com/kmakise61/smartcards/internal/mastery"
)

// EmptyReason explains why a built queue came back empty. It is a result,
// not an error: the caller can offer an explicit limit override for the
// capped case.
type EmptyReason string

const (
	EmptyNone       EmptyReason = ""
	EmptyNoEligible EmptyReason = "no-eligible-items"
	EmptyCapped     EmptyReason = "capped-by-daily-limit"
)

// Scope narrows the card pool before selection. The zero value matches
// everything.
type Scope struct {
	Deck   string          // match this deck only, "" = all
	Levels []mastery.Level // restrict to these mastery levels, nil = all
}

// Match reports whether the card falls inside the scope.
func (sc Scope) Match(c *card.Card) bool {
	if sc.Deck != "" && c.Deck != sc.Deck {
		return false
	}
	if len(sc.Levels) == 0 {
		return true
	}
	level := mastery.ClassifyCard(c)
	for _, l := range sc.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// BuildInfo reports how the selection went alongside the queue itself.
type BuildInfo struct {
	EmptyReason EmptyReason
	Capped      bool // daily caps excluded otherwise-eligible cards
	DueCount    int
	NewCount    int
}

// Build selects and orders a bounded batch of card IDs for one session.
//
// Due cards (oldest overdue first) take precedence over new cards (pool
// order). Each partition is limited by its remaining daily allowance, or
// by the batch size alone when ignoreLimits is set. The combined result
// never exceeds the batch size; truncation drops new cards before due
// ones.
func Build(pool []card.Card, scope Scope, prog DailyProgress, prefs config.Preferences, ignoreLimits bool, now time.Time) (*Queue, BuildInfo) {
	prefs.Normalize()

	var due, fresh []card.Card
	for i := range pool {
		c := pool[i]
		if !scope.Match(&c) {
			continue
		}
		switch {
		case c.IsDue(now):
			due = append(due, c)
		case c.Status == card.StatusNew:
			fresh = append(fresh, c)
		}
	}

	dueAllow := max(0, prefs.ReviewsPerDay-prog.ReviewConsumed)
	newAllow := max(0, prefs.NewPerDay-prog.NewConsumed)
	capped := len(due) > dueAllow || len(fresh) > newAllow
	if ignoreLimits {
		dueAllow = prefs.BatchSize
		newAllow = prefs.BatchSize
		capped = false
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Due.Before(due[j].Due)
	})

	due = due[:min(len(due), dueAllow)]
	fresh = fresh[:min(len(fresh), newAllow)]

	if prefs.HighYieldFirst {
		hoistHighYield(due)
		hoistHighYield(fresh)
	}

	picked := append(append([]card.Card{}, due...), fresh...)
	if len(picked) > prefs.BatchSize {
		picked = picked[:prefs.BatchSize]
	}

	q := &Queue{}
	info := BuildInfo{Capped: capped}
	for i := range picked {
		q.ids = append(q.ids, picked[i].ID)
		if i < len(due) {
			info.DueCount++
		} else {
			info.NewCount++
		}
	}

	if len(q.ids) == 0 {
		if len(due) == 0 && len(fresh) == 0 && !capped {
			info.EmptyReason = EmptyNoEligible
		} else {
			info.EmptyReason = EmptyCapped
		}
	}
	return q, info
}

// hoistHighYield stable-partitions cards so high-yield ones come first.
// Relative order within each group is preserved.
func hoistHighYield(cards []card.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].HighYield && !cards[j].HighYield
	})
}
