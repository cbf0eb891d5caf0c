package activity

import (
	"testing"
	"time"

	"github.com/kmakise61/smartcards/internal/card"
)

var trackNow = time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

func eventOn(daysAgo int) Event {
	return Event{
		CardID:    "c",
		Rating:    card.Good,
		Timestamp: trackNow.AddDate(0, 0, -daysAgo),
	}
}

func TestStreak_ConsecutiveDaysIncludingToday(t *testing.T) {
	var events []Event
	for day := 0; day < 4; day++ {
		events = append(events, eventOn(day))
	}

	if got := Streak(events, trackNow); got != 4 {
		t.Errorf("Streak = %d, want 4", got)
	}
}

// No review yet today: the streak starts counting from yesterday instead
// of reporting zero.
func TestStreak_TodayNotYetStudied(t *testing.T) {
	events := []Event{eventOn(1), eventOn(2), eventOn(3)}

	if got := Streak(events, trackNow); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestStreak_GapBreaks(t *testing.T) {
	events := []Event{eventOn(0), eventOn(1), eventOn(3), eventOn(4)}

	if got := Streak(events, trackNow); got != 2 {
		t.Errorf("Streak = %d, want 2 (gap at day -2)", got)
	}
}

func TestStreak_NoEvents(t *testing.T) {
	if got := Streak(nil, trackNow); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
}

func TestStreak_MultipleEventsPerDayCountOnce(t *testing.T) {
	events := []Event{eventOn(0), eventOn(0), eventOn(0), eventOn(1)}
	if got := Streak(events, trackNow); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestStreak_HeterogeneousTimestampShapes(t *testing.T) {
	events := []Event{
		{Timestamp: trackNow}, // time.Time, today
		{Timestamp: trackNow.AddDate(0, 0, -1).Format(time.RFC3339)}, // ISO string
		{Timestamp: float64(trackNow.AddDate(0, 0, -2).Unix())},      // epoch seconds
		{Timestamp: trackNow.AddDate(0, 0, -3).UnixMilli()},          // epoch millis
	}
	if got := Streak(events, trackNow); got != 4 {
		t.Errorf("Streak = %d, want 4 across timestamp shapes", got)
	}
}

func TestStreak_MalformedTimestampsSkipped(t *testing.T) {
	events := []Event{
		eventOn(0),
		{Timestamp: "not-a-time"},
		{Timestamp: nil},
		{Timestamp: -12.0},
	}
	if got := Streak(events, trackNow); got != 1 {
		t.Errorf("Streak = %d, want 1 with malformed entries skipped", got)
	}
}

func TestHeatmap_CountsPerLocalDate(t *testing.T) {
	events := []Event{eventOn(0), eventOn(0), eventOn(1), {Timestamp: "garbage"}}

	counts := Heatmap(events, trackNow)

	today := DateKey(trackNow, trackNow.Location())
	yesterday := DateKey(trackNow.AddDate(0, 0, -1), trackNow.Location())
	if counts[today] != 2 {
		t.Errorf("today = %d, want 2", counts[today])
	}
	if counts[yesterday] != 1 {
		t.Errorf("yesterday = %d, want 1", counts[yesterday])
	}
	if len(counts) != 2 {
		t.Errorf("distinct days = %d, want 2", len(counts))
	}
}

func TestHeatmap_ExcludesOutsideWindow(t *testing.T) {
	events := []Event{eventOn(0), eventOn(HeatmapWindowDays + 30)}
	counts := Heatmap(events, trackNow)
	if len(counts) != 1 {
		t.Errorf("distinct days = %d, want 1 (old event excluded)", len(counts))
	}
}

// Recomputation over the same log is idempotent, so callers can rerun the
// tracker on every live update.
func TestAggregation_Idempotent(t *testing.T) {
	events := []Event{eventOn(0), eventOn(1), eventOn(2)}

	first := Streak(events, trackNow)
	firstMap := Heatmap(events, trackNow)
	second := Streak(events, trackNow)
	secondMap := Heatmap(events, trackNow)

	if first != second {
		t.Errorf("streak changed between runs: %d vs %d", first, second)
	}
	if len(firstMap) != len(secondMap) {
		t.Errorf("heatmap changed between runs")
	}
	for k, v := range firstMap {
		if secondMap[k] != v {
			t.Errorf("heatmap[%s] changed: %d vs %d", k, v, secondMap[k])
		}
	}
}
