package attendance

import "context"

// RecordFilter pages through the ledger. A zero Limit means no limit.
type RecordFilter struct {
	Limit  int
	Offset int
}

// Ledger is the append-only audit trail of completed attendance intervals,
// read head first (most recent first).
type Ledger interface {
	// Append inserts rec at the head of the ledger. Appending an ID the ledger
	// already holds is a no-op.
	Append(ctx context.Context, rec TimeRecord) error

	// List returns records most recent first. It has no side effects and may be
	// called any number of times.
	List(ctx context.Context, filter RecordFilter) ([]TimeRecord, error)
}
