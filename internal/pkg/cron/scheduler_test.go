package cron

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	require.NoError(t, s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}))

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	assert.GreaterOrEqual(t, after, int32(1))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_AddJobValidation(t *testing.T) {
	s := NewScheduler()
	assert.Error(t, s.AddJob("bad", 0, func(context.Context) error { return nil }))

	s.Start()
	defer s.Stop()
	assert.Error(t, s.AddJob("late", time.Second, func(context.Context) error { return nil }))
}

func TestScheduler_RunOnceRecoversPanics(t *testing.T) {
	s := NewScheduler()
	var ran atomic.Bool
	require.NoError(t, s.AddJob("boom", time.Second, func(context.Context) error { panic("boom") }))
	require.NoError(t, s.AddJob("ok", time.Second, func(context.Context) error {
		ran.Store(true)
		return nil
	}))

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, ran.Load())

	s.Stop()
	s.Stop()
}

type captureNotifier struct {
	mu     sync.Mutex
	events []notification.Event
}

func (c *captureNotifier) Notify(ctx context.Context, event notification.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func TestClockJobs_Tick(t *testing.T) {
	notifier := &captureNotifier{}
	jobs := NewClockJobs(notifier, time.UTC)
	jobs.now = func() time.Time { return time.Date(2025, 10, 6, 14, 5, 9, 0, time.UTC) }

	s := NewScheduler()
	require.NoError(t, jobs.RegisterJobs(s, time.Second))
	require.NoError(t, s.RunOnce(context.Background()))

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notification.TopicClock, notifier.events[0].Topic)
	assert.Equal(t, "Mon • 06 Oct • 14:05:09", notifier.events[0].Message)
}
