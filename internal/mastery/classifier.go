// Package mastery derives a three-state mastery label from review history.
package mastery

import "github.com/kmakise61/smartcards/internal/card"

// Level is a card's position in the mastery lifecycle.
type Level string

const (
	LevelUnseen   Level = "unseen"
	LevelLearning Level = "learning"
	LevelMastered Level = "mastered"
)

// Classify derives the mastery level from whether the card has been seen
// and its current run of consecutive good-or-better ratings. Pure; the
// same inputs always produce the same label.
//
// A single good rating is enough to label a card mastered. That threshold
// is deliberate observed behavior, kept as-is pending product review.
func Classify(seen bool, consecutiveGood int) Level {
	if !seen {
		return LevelUnseen
	}
	if consecutiveGood >= 1 {
		return LevelMastered
	}
	return LevelLearning
}

// ClassifyCard is the card-shaped convenience over Classify.
func ClassifyCard(c *card.Card) Level {
	return Classify(c.Status.Seen(), c.ConsecutiveGood)
}

// Breakdown counts cards per mastery level, for dashboard statistics.
type Breakdown struct {
	Unseen   int
	Learning int
	Mastered int
}

// Count tallies the mastery breakdown over a card collection.
func Count(cards []card.Card) Breakdown {
	var b Breakdown
	for i := range cards {
		switch ClassifyCard(&cards[i]) {
		case LevelUnseen:
			b.Unseen++
		case LevelLearning:
			b.Learning++
		case LevelMastered:
			b.Mastered++
		}
	}
	return b
}
