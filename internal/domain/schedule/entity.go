package schedule

import (
	"strings"
	"time"
)

type ShiftType string

const (
	ShiftTypeExternal ShiftType = "External"  // Permanent job held outside NCL, e.g. a hotel
	ShiftTypeNCL      ShiftType = "NCL Shift" // Booked through the platform
)

// DateLayout is the civil date format shifts are keyed by.
const DateLayout = "2006-01-02"

// Shift is a booked slot on the staff calendar. Date is a civil date with no
// zone attached.
type Shift struct {
	Date     string
	Type     ShiftType
	Name     string
	Hours    string // "08:00-16:00"
	Location string
	IsBooked bool
}

// NewShift validates the date and hours range of a shift.
func NewShift(date string, typ ShiftType, name, hours, location string, booked bool) (Shift, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Shift{}, ErrInvalidShiftDate
	}
	if typ != ShiftTypeExternal && typ != ShiftTypeNCL {
		return Shift{}, ErrInvalidShiftType
	}
	if strings.TrimSpace(name) == "" {
		return Shift{}, ErrShiftNameRequired
	}
	start, end, ok := strings.Cut(hours, "-")
	if !ok {
		return Shift{}, ErrInvalidShiftHours
	}
	from, errFrom := time.Parse("15:04", start)
	to, errTo := time.Parse("15:04", end)
	if errFrom != nil || errTo != nil || !to.After(from) {
		return Shift{}, ErrInvalidShiftHours
	}
	return Shift{
		Date:     date,
		Type:     typ,
		Name:     strings.TrimSpace(name),
		Hours:    hours,
		Location: location,
		IsBooked: booked,
	}, nil
}

func (s Shift) IsExternal() bool {
	return s.Type == ShiftTypeExternal
}

type PastShiftStatus string

const (
	PastShiftApproved        PastShiftStatus = "Approved"
	PastShiftPending         PastShiftStatus = "Pending Approval"
	PastShiftNeedsCorrection PastShiftStatus = "Needs Correction"
)

// PastShift is a historical, already submitted timesheet entry.
type PastShift struct {
	ID         string
	JobName    string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalHours string
	Status     PastShiftStatus
}

// CalendarDay is one day cell of a month view.
type CalendarDay struct {
	Date    string
	Day     int
	IsToday bool
	IsFree  bool
	Shifts  []Shift
}

// Calendar is a month grid starting on Sunday. LeadingBlanks and
// TrailingBlanks pad Days out to whole weeks.
type Calendar struct {
	Year           int
	Month          time.Month
	LeadingBlanks  int
	TrailingBlanks int
	Days           []CalendarDay
}
