package spacedrep

import "github.com/kmakise61/smartcards/internal/card"

// boxIntervals is the fixed review ladder in days, indexed by box-1.
var boxIntervals = [...]float64{1, 3, 7, 14, 30}

// scheduleBoxes updates box, interval and status under the fixed-box model.
// Any stumble sends the card back to box 1; a clean recall climbs one box.
func scheduleBoxes(c *card.Card, rating card.Rating) {
	box := clampBox(c.Box)

	switch rating {
	case card.Again, card.Hard:
		box = 1
	default:
		box = clampBox(box + 1)
	}

	c.Box = box
	c.Interval = boxIntervals[box-1]
	if rating == card.Again {
		c.Status = failureStatus(c.Status)
	} else {
		c.Status = card.StatusReview
	}
}

func clampBox(b int) int {
	if b < 1 {
		return 1
	}
	if b > len(boxIntervals) {
		return len(boxIntervals)
	}
	return b
}
