package attendance

import "errors"

// Attendance domain errors
var (
	// Transition errors
	ErrAlreadyActive      = errors.New("an attendance is already active")
	ErrNoActiveAttendance = errors.New("no attendance is currently active")
	ErrUnknownCard        = errors.New("temp card not recognized")
	ErrCardMismatch       = errors.New("card is not the active proxy card")
	ErrProxyActive        = errors.New("active attendance was opened by a temp card")
	ErrUnknownJob         = errors.New("job not recognized")
)
