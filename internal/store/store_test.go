package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmakise61/smartcards/internal/card"
	"github.com/kmakise61/smartcards/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestCardRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := card.New("front text", "back text", "anatomy", now)
	c.HighYield = true
	c.RecordRating(card.Good)
	c.RecordRating(card.Again)

	require.NoError(t, st.InsertCard(ctx, c))

	got, err := st.GetCard(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Front, got.Front)
	assert.Equal(t, c.Deck, got.Deck)
	assert.True(t, got.HighYield)
	assert.Equal(t, c.Status, got.Status)
	assert.Equal(t, c.History, got.History)
	assert.Equal(t, c.Lapses, got.Lapses)
	assert.True(t, c.Due.Equal(got.Due))
}

func TestUpdateScheduling(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	c := card.New("f", "b", "", now)
	require.NoError(t, st.InsertCard(ctx, c))

	c.Status = card.StatusReview
	c.Interval = 6.5
	c.Stability = 2.4
	c.Due = now.AddDate(0, 0, 7)
	c.RecordRating(card.Good)
	require.NoError(t, st.UpdateScheduling(ctx, c))

	got, err := st.GetCard(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, card.StatusReview, got.Status)
	assert.Equal(t, 6.5, got.Interval)
	assert.Equal(t, 2.4, got.Stability)
	assert.Equal(t, 1, got.ConsecutiveGood)
}

func TestUpdateScheduling_MissingCard(t *testing.T) {
	st := openTestStore(t)
	c := card.New("f", "b", "", time.Now())
	err := st.UpdateScheduling(context.Background(), c)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestGetCard_NotFound(t *testing.T) {
	st := openTestStore(t)
	_, err := st.GetCard(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestListCards_CreationOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		c := card.New("f", "b", "", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, st.InsertCard(ctx, c))
	}

	cards, err := st.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.True(t, cards[0].CreatedAt.Before(cards[1].CreatedAt))
	assert.True(t, cards[1].CreatedAt.Before(cards[2].CreatedAt))
}

func TestReviewEventsFeedActivityLog(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, st.AppendReviewEvent(ctx, ReviewEventData{
		CardID:       "c1",
		Rating:       card.Good,
		Timestamp:    now,
		PrevInterval: 1,
		NewInterval:  3.2,
	}))
	require.NoError(t, st.AppendReviewEvent(ctx, ReviewEventData{
		CardID:    "c2",
		Rating:    card.Again,
		Timestamp: now.Add(time.Minute),
	}))

	events, err := st.RecentEvents(ctx, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "c1", events[0].CardID)
	assert.Equal(t, card.Good, events[0].Rating)
	// Timestamps come back as stored strings for the tracker to normalize.
	_, isString := events[0].Timestamp.(string)
	assert.True(t, isString)

	n, err := st.CountReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecentEvents_SinceFilter(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.AppendReviewEvent(ctx, ReviewEventData{CardID: "old", Rating: card.Good, Timestamp: old}))
	require.NoError(t, st.AppendReviewEvent(ctx, ReviewEventData{CardID: "new", Rating: card.Good, Timestamp: recent}))

	events, err := st.RecentEvents(ctx, recent.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "new", events[0].CardID)
}

func TestProgressUpsert(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	p, err := st.GetProgress(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, session.DailyProgress{Date: "2025-03-10"}, p)

	p.RecordAnswer(true)
	p.RecordAnswer(false)
	require.NoError(t, st.SaveProgress(ctx, p))

	p.RecordAnswer(false)
	require.NoError(t, st.SaveProgress(ctx, p))

	got, err := st.GetProgress(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, got.NewConsumed)
	assert.Equal(t, 2, got.ReviewConsumed)
}

func TestWipe(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.InsertCard(ctx, card.New("f", "b", "", time.Now())))
	require.NoError(t, st.AppendReviewEvent(ctx, ReviewEventData{CardID: "x", Rating: card.Good, Timestamp: time.Now()}))
	require.NoError(t, st.Wipe(ctx))

	cards, err := st.ListCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)

	n, err := st.CountReviews(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
