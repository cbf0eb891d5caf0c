package session

// DailyProgress tracks how much of the daily new/review quota has been
// consumed for one local calendar date. The zero value is an empty day.
type DailyProgress struct {
	Date           string // local calendar date key, "2006-01-02"
	NewConsumed    int
	ReviewConsumed int
}

// ForDate returns the progress applicable to the given date key. Progress
// from a different date resets to zero, so quotas roll over at local
// midnight without a scheduled job.
func (p DailyProgress) ForDate(key string) DailyProgress {
	if p.Date != key {
		return DailyProgress{Date: key}
	}
	return p
}

// RecordAnswer consumes one unit of the matching quota. wasNew refers to
// the card's status before the answer was scheduled.
func (p *DailyProgress) RecordAnswer(wasNew bool) {
	if wasNew {
		p.NewConsumed++
	} else {
		p.ReviewConsumed++
	}
}
