package attendance

import (
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
)

// State is the attendance state machine position derived from the persisted slot.
type State string

const (
	StateIdle        State = "idle"
	StateSelfActive  State = "self_active"
	StateProxyActive State = "proxy_active"
)

// RecordType tells whether an interval was opened by the staff member or by a temp card.
type RecordType string

const (
	RecordTypeSelf  RecordType = "Self"
	RecordTypeProxy RecordType = "Proxy"
)

// Header statuses shown next to the clock.
const (
	StatusOnDuty       = "On-Duty"
	StatusProxyCheckIn = "Proxy Check-In"
	StatusOffDuty      = "Off-Duty"
)

// Slot is the single process-wide attendance slot as persisted in the session
// store. ActiveProxyCard is only set together with ActiveJobID.
// ActiveStaff and RecordID are fixed at check-in and carried into the record
// written at check-out.
type Slot struct {
	ActiveJobID     *string
	ActiveProxyCard *string
	ActiveSince     *time.Time
	ActiveStaff     *staff.Identity
	RecordID        *string
}

// State derives the state machine position of the slot.
func (s Slot) State() State {
	switch {
	case s.ActiveJobID == nil:
		return StateIdle
	case s.ActiveProxyCard != nil:
		return StateProxyActive
	default:
		return StateSelfActive
	}
}

// IsActive reports whether an attendance interval is open.
func (s Slot) IsActive() bool {
	return s.ActiveJobID != nil
}

// Snapshot is the slot resolved against the catalog and card registry.
type Snapshot struct {
	State      State
	Job        *job.Job
	ProxyCard  *string
	ProxyStaff *staff.Identity
	Since      *time.Time
}

// TimeRecord is one completed attendance interval. Immutable once appended.
// Date is the local calendar day of TimeIn; only its year, month and day are
// meaningful, whatever location it carries.
type TimeRecord struct {
	ID        string
	JobID     string
	JobName   string
	StaffID   string
	StaffName string
	TimeIn    time.Time
	TimeOut   time.Time
	Duration  time.Duration
	Type      RecordType
	Date      time.Time
}

// DerivedStats are header values recomputed on every transition and never stored.
type DerivedStats struct {
	Hours  string
	Jobs   string
	Status string
}
