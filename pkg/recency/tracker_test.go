package recency

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) (*Tracker, *miniredis.Miniredis, *logrustest.Hook) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log, hook := logrustest.NewNullLogger()
	return NewTracker(client, log), mr, hook
}

func TestTopRecentOrdersByLastView(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker.RecordView(ctx, 7, 100, base)
	tracker.RecordView(ctx, 7, 200, base.Add(time.Minute))
	tracker.RecordView(ctx, 7, 300, base.Add(2*time.Minute))

	assert.Equal(t, []int64{300, 200, 100}, tracker.TopRecent(ctx, 7, 4))
}

func TestRecordViewUpsertsInsteadOfDuplicating(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker.RecordView(ctx, 7, 100, base)
	tracker.RecordView(ctx, 7, 200, base.Add(time.Minute))

	// Re-viewing board 100 moves it to the front; the set stays at two
	// entries.
	tracker.RecordView(ctx, 7, 100, base.Add(2*time.Minute))

	assert.Equal(t, []int64{100, 200}, tracker.TopRecent(ctx, 7, 4))
}

func TestTopRecentTruncatesToLimit(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 6; i++ {
		tracker.RecordView(ctx, 7, i, base.Add(time.Duration(i)*time.Second))
	}

	assert.Equal(t, []int64{6, 5, 4, 3}, tracker.TopRecent(ctx, 7, 4))
}

func TestTopRecentEmptyForUnknownUser(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	assert.Empty(t, tracker.TopRecent(context.Background(), 99, 4))
}

func TestTrackerIsolatesUsers(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker.RecordView(ctx, 1, 100, at)
	tracker.RecordView(ctx, 2, 200, at)

	assert.Equal(t, []int64{100}, tracker.TopRecent(ctx, 1, 4))
	assert.Equal(t, []int64{200}, tracker.TopRecent(ctx, 2, 4))
}

func TestForgetRemovesBoardFromSets(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker.RecordView(ctx, 1, 100, at)
	tracker.RecordView(ctx, 1, 200, at.Add(time.Second))
	tracker.RecordView(ctx, 2, 100, at)

	tracker.Forget(ctx, []int64{1, 2}, 100)

	assert.Equal(t, []int64{200}, tracker.TopRecent(ctx, 1, 4))
	assert.Empty(t, tracker.TopRecent(ctx, 2, 4))
}

func TestTrackerDegradesWhenRedisIsDown(t *testing.T) {
	tracker, mr, hook := newTestTracker(t)
	ctx := context.Background()

	mr.Close()

	tracker.RecordView(ctx, 7, 100, time.Now())
	assert.Empty(t, tracker.TopRecent(ctx, 7, 4))

	require.NotEmpty(t, hook.Entries)
	for _, entry := range hook.Entries {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
	}
}

func TestNilClientDisablesTracking(t *testing.T) {
	tracker := NewTracker(nil, nil)
	ctx := context.Background()

	tracker.RecordView(ctx, 7, 100, time.Now())
	tracker.Forget(ctx, []int64{7}, 100)
	assert.Nil(t, tracker.TopRecent(ctx, 7, 4))
}
