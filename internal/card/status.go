package card

// Status represents a card's position in the scheduling lifecycle.
type Status string

const (
	StatusNew        Status = "new"
	StatusLearning   Status = "learning"
	StatusReview     Status = "review"
	StatusRelearning Status = "relearning"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusReview, StatusRelearning:
		return true
	}
	return false
}

// Seen reports whether the card has been reviewed at least once.
func (s Status) Seen() bool {
	return s != StatusNew
}
