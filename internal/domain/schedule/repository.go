package schedule

import (
	"context"
	"time"
)

type ShiftRepository interface {
	// ListByMonth returns the shifts dated within year/month, ordered by date
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Shift, error)

	// ListPast returns historical shifts, newest first
	ListPast(ctx context.Context) ([]PastShift, error)
}
