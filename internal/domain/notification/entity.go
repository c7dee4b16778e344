package notification

import "time"

// Severity drives the toast colour on the kiosk.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Topics events are published on.
const (
	TopicTimekeeping = "timekeeping"
	TopicClock       = "clock"
)

// Event is a user-visible message emitted after a transition attempt.
type Event struct {
	Topic    string    `json:"-"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}
