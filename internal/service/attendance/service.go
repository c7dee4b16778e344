package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/domain/notification"
	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/ncl-services/ncl-backend-go/internal/domain/tempcard"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
)

const (
	unknownJobName = "Unknown Job"
	storageFailure = "Error: Attendance could not be saved. Please try again."
)

// TrackerServiceImpl owns the single attendance slot. All transitions are
// serialized by mu; nothing else may write the active* session keys.
type TrackerServiceImpl struct {
	mu       sync.Mutex
	slot     attendance.Slot
	store    session.Store
	ledger   attendance.Ledger
	catalog  job.Catalog
	cards    tempcard.Registry
	notifier notification.Notifier
	loc      *time.Location
	now      func() time.Time
}

type Option func(*TrackerServiceImpl)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *TrackerServiceImpl) {
		t.now = now
	}
}

// WithLocation sets the zone used for day boundaries in the stats.
func WithLocation(loc *time.Location) Option {
	return func(t *TrackerServiceImpl) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// NewTrackerService rebuilds the attendance slot from the session store and
// returns a ready tracker. A missing slot means Idle.
func NewTrackerService(
	ctx context.Context,
	store session.Store,
	ledger attendance.Ledger,
	catalog job.Catalog,
	cards tempcard.Registry,
	notifier notification.Notifier,
	opts ...Option,
) (attendance.Tracker, error) {
	t := &TrackerServiceImpl{
		store:    store,
		ledger:   ledger,
		catalog:  catalog,
		cards:    cards,
		notifier: notifier,
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	slot, err := t.loadSlot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore attendance state: %w", err)
	}
	t.slot = slot

	slog.Info("Attendance state restored", "state", slot.State())
	return t, nil
}

// SelfCheckIn implements attendance.Tracker.
func (t *TrackerServiceImpl) SelfCheckIn(ctx context.Context, jobID string) (attendance.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.slot.IsActive() {
		t.fail(ctx, "Error: A job is already active. Please check out first.")
		return attendance.Snapshot{}, attendance.ErrAlreadyActive
	}

	j, err := t.catalog.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			t.fail(ctx, fmt.Sprintf("Error: Job %q not recognized.", jobID))
			return attendance.Snapshot{}, attendance.ErrUnknownJob
		}
		return attendance.Snapshot{}, t.fault(ctx, fmt.Errorf("failed to get job by ID: %w", err))
	}

	user, ok, err := session.LoadCurrentUser(ctx, t.store)
	if err != nil {
		return attendance.Snapshot{}, t.fault(ctx, fmt.Errorf("failed to load current user: %w", err))
	}
	recordID, err := newRecordID()
	if err != nil {
		return attendance.Snapshot{}, t.fault(ctx, err)
	}

	now := t.now()
	next := attendance.Slot{
		ActiveJobID: &j.ID,
		ActiveSince: &now,
		RecordID:    &recordID,
	}
	if ok {
		next.ActiveStaff = &user.Identity
	}
	if err := t.persistSlot(ctx, next); err != nil {
		return attendance.Snapshot{}, t.fault(ctx, err)
	}
	t.slot = next

	t.succeed(ctx, "Successfully checked in!")
	return attendance.Snapshot{
		State: attendance.StateSelfActive,
		Job:   &j,
		Since: &now,
	}, nil
}

// SelfCheckOut implements attendance.Tracker.
func (t *TrackerServiceImpl) SelfCheckOut(ctx context.Context) (attendance.TimeRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.slot.State() {
	case attendance.StateIdle:
		t.fail(ctx, "Error: No job currently active to check out of.")
		return attendance.TimeRecord{}, attendance.ErrNoActiveAttendance
	case attendance.StateProxyActive:
		t.fail(ctx, fmt.Sprintf("Error: The active job was opened with temp card %s. Use Proxy Check-Out.", *t.slot.ActiveProxyCard))
		return attendance.TimeRecord{}, attendance.ErrProxyActive
	}

	rec, err := t.closeSlot(ctx, attendance.RecordTypeSelf)
	if err != nil {
		return attendance.TimeRecord{}, t.fault(ctx, err)
	}

	t.succeed(ctx, "Successfully checked out. Well done!")
	return rec, nil
}

// ProxyCheckIn implements attendance.Tracker.
func (t *TrackerServiceImpl) ProxyCheckIn(ctx context.Context, cardCode string) (attendance.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	code := validator.NormalizeCardCode(cardCode)
	holder, ok := t.cards.Resolve(code)
	if !ok {
		t.fail(ctx, fmt.Sprintf("Error: Card ID %q not recognized.", code))
		return attendance.Snapshot{}, attendance.ErrUnknownCard
	}

	if t.slot.IsActive() {
		t.fail(ctx, fmt.Sprintf("Error: Cannot check in %s. A job is already active.", holder.Name))
		return attendance.Snapshot{}, attendance.ErrAlreadyActive
	}

	assigned, err := t.catalog.First(ctx)
	if err != nil {
		return attendance.Snapshot{}, t.fault(ctx, fmt.Errorf("failed to get proxy job assignment: %w", err))
	}
	recordID, err := newRecordID()
	if err != nil {
		return attendance.Snapshot{}, t.fault(ctx, err)
	}

	now := t.now()
	next := attendance.Slot{
		ActiveJobID:     &assigned.ID,
		ActiveProxyCard: &code,
		ActiveSince:     &now,
		ActiveStaff:     &holder,
		RecordID:        &recordID,
	}
	if err := t.persistSlot(ctx, next); err != nil {
		return attendance.Snapshot{}, t.fault(ctx, err)
	}
	t.slot = next

	t.succeed(ctx, fmt.Sprintf("PROXY CHECK-IN SUCCESSFUL for %s. Assigned to %s.", holder.Name, assigned.Name))
	return attendance.Snapshot{
		State:      attendance.StateProxyActive,
		Job:        &assigned,
		ProxyCard:  &code,
		ProxyStaff: &holder,
		Since:      &now,
	}, nil
}

// ProxyCheckOut implements attendance.Tracker.
func (t *TrackerServiceImpl) ProxyCheckOut(ctx context.Context, cardCode string) (attendance.TimeRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	code := validator.NormalizeCardCode(cardCode)
	holder, ok := t.cards.Resolve(code)
	if !ok {
		t.fail(ctx, fmt.Sprintf("Error: Card ID %q not recognized.", code))
		return attendance.TimeRecord{}, attendance.ErrUnknownCard
	}

	if !t.slot.IsActive() {
		t.fail(ctx, fmt.Sprintf("Error: No job currently active to check %s out of.", holder.Name))
		return attendance.TimeRecord{}, attendance.ErrNoActiveAttendance
	}

	if t.slot.ActiveProxyCard == nil || *t.slot.ActiveProxyCard != code {
		active := "None"
		if t.slot.ActiveProxyCard != nil {
			active = *t.slot.ActiveProxyCard
		}
		t.fail(ctx, fmt.Sprintf("Error: Card ID %q is not the currently checked-in proxy (%s).", code, active))
		return attendance.TimeRecord{}, attendance.ErrCardMismatch
	}

	rec, err := t.closeSlot(ctx, attendance.RecordTypeProxy)
	if err != nil {
		return attendance.TimeRecord{}, t.fault(ctx, err)
	}

	t.succeed(ctx, fmt.Sprintf("PROXY CHECK-OUT SUCCESSFUL for %s.", holder.Name))
	return rec, nil
}

// ListRecords implements attendance.Tracker.
func (t *TrackerServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.TimeRecord, error) {
	records, err := t.ledger.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	return records, nil
}

// DerivedStats implements attendance.Tracker.
func (t *TrackerServiceImpl) DerivedStats(ctx context.Context) (attendance.DerivedStats, error) {
	t.mu.Lock()
	state := t.slot.State()
	t.mu.Unlock()

	records, err := t.ledger.List(ctx, attendance.RecordFilter{})
	if err != nil {
		return attendance.DerivedStats{}, fmt.Errorf("failed to list time records: %w", err)
	}

	return deriveStats(state, records, t.now().In(t.loc)), nil
}

// Snapshot implements attendance.Tracker.
func (t *TrackerServiceImpl) Snapshot(ctx context.Context) (attendance.Snapshot, error) {
	t.mu.Lock()
	slot := t.slot
	t.mu.Unlock()

	snap := attendance.Snapshot{
		State:     slot.State(),
		ProxyCard: slot.ActiveProxyCard,
		Since:     slot.ActiveSince,
	}
	if slot.ActiveJobID == nil {
		return snap, nil
	}

	j, err := t.lookupJob(ctx, *slot.ActiveJobID)
	if err != nil {
		return attendance.Snapshot{}, err
	}
	snap.Job = &j

	if slot.ActiveProxyCard != nil {
		if holder, ok := t.cards.Resolve(*slot.ActiveProxyCard); ok {
			snap.ProxyStaff = &holder
		} else {
			slog.Warn("Active proxy card no longer resolves", "proxy_card", *slot.ActiveProxyCard)
		}
	}
	return snap, nil
}

// closeSlot appends the record for the open interval, then clears the slot.
// The ledger is written first and keyed by the slot's RecordID, so a failed
// clear followed by a retry appends the same record again and the ledger
// keeps one copy.
func (t *TrackerServiceImpl) closeSlot(ctx context.Context, typ attendance.RecordType) (attendance.TimeRecord, error) {
	j, err := t.lookupJob(ctx, *t.slot.ActiveJobID)
	if err != nil {
		return attendance.TimeRecord{}, err
	}

	if t.slot.RecordID == nil {
		id, err := newRecordID()
		if err != nil {
			return attendance.TimeRecord{}, err
		}
		t.slot.RecordID = &id
	}

	var who staff.Identity
	if t.slot.ActiveStaff != nil {
		who = *t.slot.ActiveStaff
	}

	timeOut := t.now()
	timeIn := timeOut
	if t.slot.ActiveSince != nil {
		timeIn = *t.slot.ActiveSince
	}
	local := timeIn.In(t.loc)

	rec := attendance.TimeRecord{
		ID:        *t.slot.RecordID,
		JobID:     j.ID,
		JobName:   j.Name,
		StaffID:   who.ID,
		StaffName: who.Name,
		TimeIn:    timeIn,
		TimeOut:   timeOut,
		Duration:  timeOut.Sub(timeIn),
		Type:      typ,
		Date:      time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, t.loc),
	}

	if err := t.ledger.Append(ctx, rec); err != nil {
		return attendance.TimeRecord{}, fmt.Errorf("failed to append time record: %w", err)
	}

	if err := t.persistSlot(ctx, attendance.Slot{}); err != nil {
		return attendance.TimeRecord{}, err
	}
	t.slot = attendance.Slot{}

	return rec, nil
}

// lookupJob resolves a job id, falling back to a placeholder name when the
// catalog no longer has it.
func (t *TrackerServiceImpl) lookupJob(ctx context.Context, id string) (job.Job, error) {
	j, err := t.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return job.Job{ID: id, Name: unknownJobName}, nil
		}
		return job.Job{}, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return j, nil
}

// fault reports a storage or catalog failure to subscribers and returns err.
func (t *TrackerServiceImpl) fault(ctx context.Context, err error) error {
	slog.Error("Attendance transition failed", "error", err)
	t.notify(ctx, storageFailure, notification.SeverityError)
	return err
}

func (t *TrackerServiceImpl) succeed(ctx context.Context, message string) {
	slog.Info("Attendance transition", "message", message)
	t.notify(ctx, message, notification.SeveritySuccess)
}

func (t *TrackerServiceImpl) fail(ctx context.Context, message string) {
	slog.Warn("Attendance transition rejected", "message", message)
	t.notify(ctx, message, notification.SeverityError)
}

func (t *TrackerServiceImpl) notify(ctx context.Context, message string, severity notification.Severity) {
	if t.notifier == nil {
		return
	}
	t.notifier.Notify(ctx, notification.Event{
		Topic:    notification.TopicTimekeeping,
		Message:  message,
		Severity: severity,
		At:       t.now(),
	})
}
