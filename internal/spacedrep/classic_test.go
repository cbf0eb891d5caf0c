package spacedrep

import (
	"math"
	"testing"
	"time"

	"github.com/kmakise61/smartcards/internal/card"
	"github.com/kmakise61/smartcards/internal/config"
)

func classicPrefs() config.Preferences {
	prefs := config.Default()
	prefs.Algorithm = config.AlgorithmClassic
	return prefs
}

func TestClassic_SuccessProgression(t *testing.T) {
	sched := NewScheduler(classicPrefs())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	c := card.New("f", "b", "", now)

	// First success: 1 day.
	c = sched.Schedule(c, card.Good, now)
	if c.Interval != 1 {
		t.Fatalf("first interval = %v, want 1", c.Interval)
	}
	if c.Status != card.StatusReview {
		t.Fatalf("Status = %s, want review", c.Status)
	}

	// Second success: 6 days.
	c = sched.Schedule(c, card.Good, now.AddDate(0, 0, 1))
	if c.Interval != 6 {
		t.Fatalf("second interval = %v, want 6", c.Interval)
	}

	// Third success: round(prev * ease).
	ease := c.Ease
	c = sched.Schedule(c, card.Good, now.AddDate(0, 0, 7))
	want := math.Round(6 * math.Max(1.3, ease+0.1-(5-4)*(0.08+0.02)))
	if c.Interval != want {
		t.Fatalf("third interval = %v, want %v", c.Interval, want)
	}
}

func TestClassic_AgainDropsToRelearningStep(t *testing.T) {
	sched := NewScheduler(classicPrefs())
	now := time.Now()

	c := card.New("f", "b", "", now)
	c.Status = card.StatusReview
	c.Interval = 30
	c.Ease = 2.5

	got := sched.Schedule(c, card.Again, now)

	if got.Interval >= 1 {
		t.Errorf("Interval = %v, want sub-day step", got.Interval)
	}
	if got.Status != card.StatusRelearning {
		t.Errorf("Status = %s, want relearning", got.Status)
	}
	// q=1: EF' = EF + 0.1 - 4*(0.08 + 4*0.02) = EF - 0.54.
	if math.Abs(got.Ease-(2.5-0.54)) > 1e-9 {
		t.Errorf("Ease = %v, want %v", got.Ease, 2.5-0.54)
	}
	// Due lands about an hour out, computed by wall clock.
	wantDue := now.Add(time.Hour)
	if got.Due.Sub(wantDue).Abs() > time.Minute {
		t.Errorf("Due = %v, want ~%v", got.Due, wantDue)
	}
}

func TestClassic_EaseFloor(t *testing.T) {
	sched := NewScheduler(classicPrefs())
	now := time.Now()

	c := card.New("f", "b", "", now)
	c.Ease = 1.3
	for i := 0; i < 5; i++ {
		c = sched.Schedule(c, card.Again, now)
	}
	if c.Ease != 1.3 {
		t.Errorf("Ease = %v, want floor 1.3", c.Ease)
	}
}

func TestClassic_HardGrowsSlower(t *testing.T) {
	sched := NewScheduler(classicPrefs())
	now := time.Now()

	c := card.New("f", "b", "", now)
	c.Status = card.StatusReview
	c.Interval = 10
	c.Ease = 2.5

	hard := sched.Schedule(c, card.Hard, now)
	good := sched.Schedule(c, card.Good, now)

	if hard.Interval >= good.Interval {
		t.Errorf("hard interval %v should be below good interval %v", hard.Interval, good.Interval)
	}
	if hard.Status != card.StatusReview {
		t.Errorf("hard keeps the card in review, got %s", hard.Status)
	}
}

// Relearning success restarts the 1-day ladder instead of resuming the
// old interval.
func TestClassic_SuccessAfterLapseRestartsLadder(t *testing.T) {
	sched := NewScheduler(classicPrefs())
	now := time.Now()

	c := card.New("f", "b", "", now)
	c.Status = card.StatusRelearning
	c.Interval = classicLapseDays

	got := sched.Schedule(c, card.Good, now)
	if got.Interval != 1 {
		t.Errorf("Interval = %v, want 1", got.Interval)
	}
}
