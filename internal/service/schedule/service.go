package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	shiftRepo schedule.ShiftRepository
}

func NewScheduleService(shiftRepo schedule.ShiftRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{shiftRepo: shiftRepo}
}

// Month implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Month(ctx context.Context, year int, month time.Month, today time.Time) (schedule.Calendar, error) {
	shifts, err := s.shiftRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return schedule.Calendar{}, fmt.Errorf("failed to list shifts for %d-%02d: %w", year, month, err)
	}

	byDate := make(map[string][]schedule.Shift, len(shifts))
	for _, shift := range shifts {
		byDate[shift.Date] = append(byDate[shift.Date], shift)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := today.Format(schedule.DateLayout)

	cal := schedule.Calendar{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]schedule.CalendarDay, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1).Format(schedule.DateLayout)
		dayShifts := byDate[date]
		cal.Days = append(cal.Days, schedule.CalendarDay{
			Date:    date,
			Day:     day,
			IsToday: date == todayKey,
			IsFree:  len(dayShifts) == 0,
			Shifts:  dayShifts,
		})
	}

	// Pad the end out to a whole week
	cal.TrailingBlanks = (7 - (cal.LeadingBlanks+daysInMonth)%7) % 7

	return cal, nil
}

// PastShifts implements schedule.ScheduleService.
func (s *scheduleServiceImpl) PastShifts(ctx context.Context) ([]schedule.PastShift, error) {
	past, err := s.shiftRepo.ListPast(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list past shifts: %w", err)
	}
	return past, nil
}
