package memory

import (
	"context"
	"sync"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
)

// Ledger is an unbounded in-memory time record ledger, newest record first.
type Ledger struct {
	mu      sync.RWMutex
	records []attendance.TimeRecord
	ids     map[string]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{ids: make(map[string]struct{})}
}

var _ attendance.Ledger = (*Ledger)(nil)

// Append implements attendance.Ledger. A record whose ID is already held is
// ignored.
func (l *Ledger) Append(ctx context.Context, rec attendance.TimeRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.ids[rec.ID]; ok {
		return nil
	}
	l.ids[rec.ID] = struct{}{}
	l.records = append([]attendance.TimeRecord{rec}, l.records...)
	return nil
}

// List implements attendance.Ledger. The returned slice is a copy.
func (l *Ledger) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.TimeRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > len(l.records) {
		start = len(l.records)
	}
	end := len(l.records)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	out := make([]attendance.TimeRecord, end-start)
	copy(out, l.records[start:end])
	return out, nil
}
