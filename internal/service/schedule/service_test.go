package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/schedule"
	"github.com/ncl-services/ncl-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() schedule.ScheduleService {
	shifts := []schedule.Shift{
		{Date: "2025-10-06", Type: schedule.ShiftTypeExternal, Name: "Hotel Shift (Perm)", Hours: "08:00-16:00", Location: "City Center Hotel", IsBooked: true},
		{Date: "2025-10-07", Type: schedule.ShiftTypeNCL, Name: "Supervisor Training", Hours: "10:00-14:00", Location: "NCL Office", IsBooked: true},
		{Date: "2025-11-03", Type: schedule.ShiftTypeNCL, Name: "Next month", Hours: "10:00-14:00", Location: "NCL Office", IsBooked: true},
	}
	past := []schedule.PastShift{
		{ID: "rec007", CheckIn: time.Date(2025, 9, 27, 10, 0, 0, 0, time.UTC)},
		{ID: "rec005", CheckIn: time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)},
	}
	return NewScheduleService(memory.NewShiftRepository(shifts, past))
}

func TestMonth(t *testing.T) {
	svc := newTestService()
	today := time.Date(2025, 10, 7, 9, 0, 0, 0, time.UTC)

	cal, err := svc.Month(context.Background(), 2025, time.October, today)
	require.NoError(t, err)

	// October 2025 starts on a Wednesday and has 31 days
	assert.Equal(t, 3, cal.LeadingBlanks)
	assert.Len(t, cal.Days, 31)
	assert.Equal(t, 1, cal.TrailingBlanks)
	assert.Zero(t, (cal.LeadingBlanks+len(cal.Days)+cal.TrailingBlanks)%7)

	oct6 := cal.Days[5]
	assert.Equal(t, "2025-10-06", oct6.Date)
	assert.False(t, oct6.IsFree)
	require.Len(t, oct6.Shifts, 1)
	assert.True(t, oct6.Shifts[0].IsExternal())

	assert.True(t, cal.Days[6].IsToday)
	assert.True(t, cal.Days[0].IsFree)

	for _, d := range cal.Days {
		for _, s := range d.Shifts {
			assert.NotEqual(t, "Next month", s.Name)
		}
	}
}

func TestMonth_Padding(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		year     int
		month    time.Month
		leading  int
		trailing int
	}{
		{2026, time.February, 0, 0}, // Sunday start, 28 days
		{2025, time.November, 6, 6},
		{2024, time.February, 4, 2},
	}
	for _, c := range cases {
		cal, err := svc.Month(context.Background(), c.year, c.month, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, c.leading, cal.LeadingBlanks, "%d-%02d leading", c.year, c.month)
		assert.Equal(t, c.trailing, cal.TrailingBlanks, "%d-%02d trailing", c.year, c.month)
	}
}

func TestPastShifts_NewestFirst(t *testing.T) {
	past, err := newTestService().PastShifts(context.Background())
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, "rec005", past[0].ID)
}
