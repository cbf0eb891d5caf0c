package spacedrep

import (
	"math"

	"github.com/kmakise61/smartcards/internal/card"
)

// Classic ease-factor model constants.
const (
	minEase           = 1.3
	classicFirstDays  = 1.0
	classicSecondDays = 6.0
	classicLapseDays  = 1.0 / 24.0 // ~1 hour relearning step
)

// classicQualities maps ratings onto the 0-5 quality scale the ease-factor
// update expects. Only four grades are reachable from the rating buttons.
var classicQualities = map[card.Rating]float64{
	card.Again: 1,
	card.Hard:  3,
	card.Good:  4,
	card.Easy:  5,
}

// scheduleClassic updates ease, interval and status under the ease-factor
// model. The ease factor moves on every review, including failures.
func scheduleClassic(c *card.Card, rating card.Rating) {
	q := classicQualities[rating]
	c.Ease = math.Max(minEase, c.Ease+0.1-(5-q)*(0.08+(5-q)*0.02))

	if q < 3 {
		c.Interval = classicLapseDays
		c.Status = failureStatus(c.Status)
		return
	}

	switch {
	case c.Status != card.StatusReview || c.Interval < classicFirstDays:
		c.Interval = classicFirstDays
	case c.Interval < classicSecondDays:
		c.Interval = classicSecondDays
	default:
		c.Interval = math.Round(c.Interval * c.Ease)
	}
	c.Status = card.StatusReview
}
