package attendance

import (
	"context"
)

// Tracker is the timekeeping state machine. Every transition either succeeds
// or returns an error without touching state.
type Tracker interface {
	// SelfCheckIn opens a self-service interval on jobID (scanned from the job QR code)
	SelfCheckIn(ctx context.Context, jobID string) (Snapshot, error)

	// SelfCheckOut closes the open self-service interval
	SelfCheckOut(ctx context.Context) (TimeRecord, error)

	// ProxyCheckIn opens an interval on behalf of the temp card holder
	ProxyCheckIn(ctx context.Context, cardCode string) (Snapshot, error)

	// ProxyCheckOut closes the proxy interval opened with the same card
	ProxyCheckOut(ctx context.Context, cardCode string) (TimeRecord, error)

	// ListRecords returns completed intervals, most recent first
	ListRecords(ctx context.Context, filter RecordFilter) ([]TimeRecord, error)

	// DerivedStats computes the header statistics from current state
	DerivedStats(ctx context.Context) (DerivedStats, error)

	// Snapshot returns the current state resolved against the catalog
	Snapshot(ctx context.Context) (Snapshot, error)
}
