package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	// Month builds the calendar grid for year/month, flagging today and free days
	Month(ctx context.Context, year int, month time.Month, today time.Time) (Calendar, error)

	// PastShifts lists historical shifts, newest first
	PastShifts(ctx context.Context) ([]PastShift, error)
}
