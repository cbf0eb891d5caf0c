package spacedrep

import (
	"math"

	"github.com/kmakise61/smartcards/internal/card"
)

// Memory model tuning. These are empirical values, not taken from a
// published algorithm; treat them as replaceable parameters.
const (
	stabilityFloor  = 0.5
	difficultyStep  = 0.32
	growthScale     = 0.2
	retentionFactor = 9.0
	relearnStepDays = 0.0035 // ~5 minutes
)

// memoryGrades maps ratings onto the classic quality scale, so a good
// rating lowers difficulty by one step and hard leaves it unchanged.
var memoryGrades = map[card.Rating]float64{
	card.Again: 1,
	card.Hard:  3,
	card.Good:  4,
	card.Easy:  5,
}

// growthMults scales stability growth per successful rating.
var growthMults = map[card.Rating]float64{
	card.Hard: 0.8,
	card.Good: 1.5,
	card.Easy: 2.5,
}

// scheduleMemory updates stability, difficulty, interval and status under
// the memory-stability model.
func (s *Scheduler) scheduleMemory(c *card.Card, rating card.Rating) {
	g := memoryGrades[rating]
	c.Difficulty = clampDifficulty(c.Difficulty - difficultyStep*(g-3))

	if rating == card.Again {
		c.Stability = stabilityFloor
		c.Interval = relearnStepDays
		c.Status = failureStatus(c.Status)
		return
	}

	growthBase := 5 - 0.3*c.Difficulty
	next := c.Stability * (1 + growthBase*growthMults[rating]*growthScale)
	c.Stability = math.Max(stabilityFloor, next)

	r := s.prefs.TargetRetention
	interval := c.Stability * retentionFactor * (1/r - 1)

	// Intensity shortens intervals by up to 20%; fuzz spreads reviews so
	// they do not cluster on the same day. Neither applies to failures.
	interval *= 1 - float64(s.prefs.Intensity)/100*growthScale
	if s.prefs.Fuzz {
		interval = fuzzInterval(interval, s.rng)
	}

	c.Interval = interval
	c.Status = card.StatusReview
}

func clampDifficulty(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
