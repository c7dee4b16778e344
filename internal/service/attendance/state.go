package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
)

// slotKeys are every key of an open interval except KeyActiveJobID.
var slotKeys = []string{
	session.KeyActiveProxyCard,
	session.KeyActiveSince,
	session.KeyActiveStaff,
	session.KeyActiveRecordID,
}

// loadSlot reads the persisted slot keys. Keys without a job cannot be
// reached through any transition, so they are dropped and logged.
func (t *TrackerServiceImpl) loadSlot(ctx context.Context) (attendance.Slot, error) {
	var slot attendance.Slot

	values := make(map[string]string, len(slotKeys)+1)
	for _, key := range append([]string{session.KeyActiveJobID}, slotKeys...) {
		v, ok, err := t.store.Get(ctx, key)
		if err != nil {
			return slot, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if ok && v != "" {
			values[key] = v
		}
	}

	jobID, hasJob := values[session.KeyActiveJobID]
	if !hasJob {
		if len(values) > 0 {
			slog.Warn("Discarding orphaned attendance keys", "keys", values)
			if err := t.store.Delete(ctx, slotKeys...); err != nil {
				return slot, fmt.Errorf("failed to clear orphaned attendance keys: %w", err)
			}
		}
		return slot, nil
	}

	slot.ActiveJobID = &jobID
	if card, ok := values[session.KeyActiveProxyCard]; ok {
		slot.ActiveProxyCard = &card
	}

	startedAt := t.now()
	if since, ok := values[session.KeyActiveSince]; ok {
		parsed, err := time.Parse(time.RFC3339Nano, since)
		if err != nil {
			slog.Warn("Invalid activeSince, restarting interval clock", "value", since, "error", err)
		} else {
			startedAt = parsed
		}
	}
	slot.ActiveSince = &startedAt

	if raw, ok := values[session.KeyActiveStaff]; ok {
		var who staff.Identity
		if err := json.Unmarshal([]byte(raw), &who); err != nil {
			slog.Warn("Invalid activeStaff, interval has no staff", "value", raw, "error", err)
		} else {
			slot.ActiveStaff = &who
		}
	}

	recordID, ok := values[session.KeyActiveRecordID]
	if _, err := uuid.Parse(recordID); !ok || err != nil {
		id, err := newRecordID()
		if err != nil {
			return attendance.Slot{}, err
		}
		recordID = id
	}
	slot.RecordID = &recordID

	return slot, nil
}

// persistSlot writes slot to the store. The job key is written last and
// removed first, so a partial write never leaves the other keys looking active.
func (t *TrackerServiceImpl) persistSlot(ctx context.Context, slot attendance.Slot) error {
	if slot.ActiveJobID == nil {
		if err := t.store.Delete(ctx, session.KeyActiveJobID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", session.KeyActiveJobID, err)
		}
		if err := t.store.Delete(ctx, slotKeys...); err != nil {
			return fmt.Errorf("failed to clear attendance keys: %w", err)
		}
		return nil
	}

	values := map[string]*string{
		session.KeyActiveProxyCard: slot.ActiveProxyCard,
		session.KeyActiveRecordID:  slot.RecordID,
	}
	if slot.ActiveSince != nil {
		since := slot.ActiveSince.Format(time.RFC3339Nano)
		values[session.KeyActiveSince] = &since
	}
	if slot.ActiveStaff != nil {
		raw, err := json.Marshal(slot.ActiveStaff)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", session.KeyActiveStaff, err)
		}
		who := string(raw)
		values[session.KeyActiveStaff] = &who
	}

	for _, key := range slotKeys {
		v := values[key]
		if v == nil {
			if err := t.store.Delete(ctx, key); err != nil {
				return fmt.Errorf("failed to clear %s: %w", key, err)
			}
			continue
		}
		if err := t.store.Set(ctx, key, *v); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}

	if err := t.store.Set(ctx, session.KeyActiveJobID, *slot.ActiveJobID); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.KeyActiveJobID, err)
	}
	return nil
}

func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate record ID: %w", err)
	}
	return id.String(), nil
}

// deriveStats builds the header values. Hours sums the durations of records
// closed on the local day of now.
func deriveStats(state attendance.State, records []attendance.TimeRecord, now time.Time) attendance.DerivedStats {
	loc := now.Location()
	y, m, d := now.Date()

	var worked time.Duration
	for _, rec := range records {
		ry, rm, rd := rec.TimeOut.In(loc).Date()
		if ry == y && rm == m && rd == d {
			worked += rec.Duration
		}
	}

	stats := attendance.DerivedStats{
		Hours:  fmt.Sprintf("%.1f", worked.Hours()),
		Jobs:   "0",
		Status: attendance.StatusOffDuty,
	}
	switch state {
	case attendance.StateSelfActive:
		stats.Jobs = "1"
		stats.Status = attendance.StatusOnDuty
	case attendance.StateProxyActive:
		stats.Jobs = "1"
		stats.Status = attendance.StatusProxyCheckIn
	}
	return stats
}
