package schedule

import (
	"strings"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
)

// ========================================
// QUERY DTOs
// ========================================

type MonthQuery struct {
	Month string `json:"month"`
}

// Validate parses Month ("YYYY-MM"). An empty month resolves to the month of now.
func (q *MonthQuery) Validate(now time.Time) (int, time.Month, error) {
	q.Month = strings.TrimSpace(q.Month)
	if q.Month == "" {
		return now.Year(), now.Month(), nil
	}

	parsed, ok := validator.IsValidMonth(q.Month)
	if !ok {
		return 0, 0, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}
	return parsed.Year(), parsed.Month(), nil
}

// ========================================
// RESPONSE DTOs
// ========================================

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type ShiftResponse struct {
	Type       ShiftType `json:"type"`
	Name       string    `json:"name"`
	Hours      string    `json:"hours"`
	Location   string    `json:"location"`
	IsBooked   bool      `json:"is_booked"`
	IsExternal bool      `json:"is_external"`
}

type CalendarDayResponse struct {
	Date    string          `json:"date"`
	Day     int             `json:"day"`
	IsToday bool            `json:"is_today"`
	IsFree  bool            `json:"is_free"`
	Shifts  []ShiftResponse `json:"shifts"`
}

type CalendarResponse struct {
	Month          string                `json:"month"`
	Label          string                `json:"label"`
	Weekdays       []string              `json:"weekdays"`
	LeadingBlanks  int                   `json:"leading_blanks"`
	TrailingBlanks int                   `json:"trailing_blanks"`
	Days           []CalendarDayResponse `json:"days"`
}

type PastShiftResponse struct {
	ID         string          `json:"id"`
	JobName    string          `json:"job_name"`
	Date       string          `json:"date"`
	CheckIn    string          `json:"check_in"`
	CheckOut   string          `json:"check_out"`
	TotalHours string          `json:"total_hours"`
	Status     PastShiftStatus `json:"status"`
}

func NewCalendarResponse(c Calendar) CalendarResponse {
	first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
	resp := CalendarResponse{
		Month:          first.Format("2006-01"),
		Label:          first.Format("January 2006"),
		Weekdays:       weekdayHeaders,
		LeadingBlanks:  c.LeadingBlanks,
		TrailingBlanks: c.TrailingBlanks,
		Days:           make([]CalendarDayResponse, 0, len(c.Days)),
	}
	for _, d := range c.Days {
		day := CalendarDayResponse{
			Date:    d.Date,
			Day:     d.Day,
			IsToday: d.IsToday,
			IsFree:  d.IsFree,
			Shifts:  make([]ShiftResponse, 0, len(d.Shifts)),
		}
		for _, s := range d.Shifts {
			day.Shifts = append(day.Shifts, ShiftResponse{
				Type:       s.Type,
				Name:       s.Name,
				Hours:      s.Hours,
				Location:   s.Location,
				IsBooked:   s.IsBooked,
				IsExternal: s.IsExternal(),
			})
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}

func NewPastShiftResponse(p PastShift, loc *time.Location) PastShiftResponse {
	return PastShiftResponse{
		ID:         p.ID,
		JobName:    p.JobName,
		Date:       p.CheckIn.In(loc).Format("Jan 2"),
		CheckIn:    p.CheckIn.In(loc).Format("03:04 PM"),
		CheckOut:   p.CheckOut.In(loc).Format("03:04 PM"),
		TotalHours: p.TotalHours,
		Status:     p.Status,
	}
}
