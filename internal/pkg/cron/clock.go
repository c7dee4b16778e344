package cron

import (
	"context"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/notification"
)

// ClockDisplayLayout matches the kiosk header, e.g. "Mon • 06 Oct • 14:05:09".
const ClockDisplayLayout = "Mon • 02 Jan • 15:04:05"

// ClockJobs publishes the wall clock for the kiosk header. It never reads or
// writes attendance state.
type ClockJobs struct {
	notifier notification.Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewClockJobs(notifier notification.Notifier, loc *time.Location) *ClockJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &ClockJobs{
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

func (j *ClockJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) error {
	return scheduler.AddJob("clock_tick", interval, j.Tick)
}

// Tick publishes the current local time on the clock topic.
func (j *ClockJobs) Tick(ctx context.Context) error {
	now := j.now().In(j.loc)
	j.notifier.Notify(ctx, notification.Event{
		Topic:    notification.TopicClock,
		Message:  now.Format(ClockDisplayLayout),
		Severity: notification.SeverityInfo,
		At:       now,
	})
	return nil
}
