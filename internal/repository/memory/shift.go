package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/schedule"
)

type ShiftRepository struct {
	shifts []schedule.Shift
	past   []schedule.PastShift
}

func NewShiftRepository(shifts []schedule.Shift, past []schedule.PastShift) *ShiftRepository {
	r := &ShiftRepository{
		shifts: append([]schedule.Shift(nil), shifts...),
		past:   append([]schedule.PastShift(nil), past...),
	}
	sort.SliceStable(r.shifts, func(i, j int) bool {
		return r.shifts[i].Date < r.shifts[j].Date
	})
	sort.SliceStable(r.past, func(i, j int) bool {
		return r.past[i].CheckIn.After(r.past[j].CheckIn)
	})
	return r
}

var _ schedule.ShiftRepository = (*ShiftRepository)(nil)

// ListByMonth implements schedule.ShiftRepository.
func (r *ShiftRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]schedule.Shift, error) {
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")

	var out []schedule.Shift
	for _, s := range r.shifts {
		if strings.HasPrefix(s.Date, prefix) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListPast implements schedule.ShiftRepository.
func (r *ShiftRepository) ListPast(ctx context.Context) ([]schedule.PastShift, error) {
	return append([]schedule.PastShift(nil), r.past...), nil
}
