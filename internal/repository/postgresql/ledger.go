package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/database"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) attendance.Ledger {
	return &ledgerRepository{db: db}
}

// Append implements attendance.Ledger.
func (l *ledgerRepository) Append(ctx context.Context, rec attendance.TimeRecord) error {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO time_records (
			id, job_id, job_name, staff_id, staff_name,
			time_in, time_out, duration_ms, record_type, record_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := q.Exec(ctx, query,
		rec.ID,
		rec.JobID,
		rec.JobName,
		rec.StaffID,
		rec.StaffName,
		rec.TimeIn,
		rec.TimeOut,
		rec.Duration.Milliseconds(),
		string(rec.Type),
		rec.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert time record: %w", err)
	}
	return nil
}

// List implements attendance.Ledger.
func (l *ledgerRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.TimeRecord, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, job_id, job_name, staff_id, staff_name,
			   time_in, time_out, duration_ms, record_type, record_date
		FROM time_records
		ORDER BY seq DESC
		LIMIT $1 OFFSET $2
	`

	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.TimeRecord, 0)
	for rows.Next() {
		var (
			rec        attendance.TimeRecord
			durationMS int64
			recordType string
		)
		if err := rows.Scan(
			&rec.ID, &rec.JobID, &rec.JobName, &rec.StaffID, &rec.StaffName,
			&rec.TimeIn, &rec.TimeOut, &durationMS, &recordType, &rec.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.Type = attendance.RecordType(recordType)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time records: %w", err)
	}

	return records, nil
}
