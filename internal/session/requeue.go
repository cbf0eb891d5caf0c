package session

import "github.com/kmakise61/smartcards/internal/card"

// Requeue offsets: how many positions ahead in the remaining queue an
// answered card is reinserted. Failed cards resurface soon; hard cards
// that are still being learned come back later in the same session.
const (
	againRequeueOffset = 3
	hardRequeueOffset  = 8
)

// Queue is the ephemeral ordered batch for the active session. Cards are
// tracked by stable ID, never by pointer identity; the relative order of
// unanswered cards only changes through explicit requeue insertions.
type Queue struct {
	ids []string
}

// Len returns the number of cards remaining.
func (q *Queue) Len() int {
	return len(q.ids)
}

// IDs returns the remaining card IDs in order.
func (q *Queue) IDs() []string {
	out := make([]string, len(q.ids))
	copy(out, q.ids)
	return out
}

// Next returns the ID of the card to present, or false when the session
// is finished.
func (q *Queue) Next() (string, bool) {
	if len(q.ids) == 0 {
		return "", false
	}
	return q.ids[0], true
}

// Answer removes the rated card from the queue and applies the in-session
// requeue rule. prevStatus is the card's status before the rating was
// scheduled; it decides whether a hard answer requeues at all.
//
//	again      -> reinsert a few positions ahead so it resurfaces soon
//	hard       -> reinsert further back, only for new/learning cards
//	good/easy  -> gone for the rest of the session
func (q *Queue) Answer(id string, rating card.Rating, prevStatus card.Status) {
	idx := q.indexOf(id)
	if idx < 0 {
		return
	}
	q.ids = append(q.ids[:idx], q.ids[idx+1:]...)

	switch rating {
	case card.Again:
		q.insertAt(idx+againRequeueOffset, id)
	case card.Hard:
		if prevStatus == card.StatusNew || prevStatus == card.StatusLearning {
			q.insertAt(idx+hardRequeueOffset, id)
		}
	}
}

func (q *Queue) indexOf(id string) int {
	for i, v := range q.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (q *Queue) insertAt(pos int, id string) {
	if pos > len(q.ids) {
		pos = len(q.ids)
	}
	q.ids = append(q.ids, "")
	copy(q.ids[pos+1:], q.ids[pos:])
	q.ids[pos] = id
}
