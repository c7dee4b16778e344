package schedule

import "errors"

var (
	// Shift Errors
	ErrInvalidShiftDate  = errors.New("invalid shift date, use YYYY-MM-DD")
	ErrInvalidShiftType  = errors.New("shift type must be 'External' or 'NCL Shift'")
	ErrShiftNameRequired = errors.New("shift name is required")
	ErrInvalidShiftHours = errors.New("shift hours must look like 08:00-16:00")
)
