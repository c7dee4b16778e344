package export

import (
	"fmt"
	"io"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const (
	RecordsSheet       = "Time Records"
	XLSXContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	recordsDefaultName = "Sheet1"
)

var recordsHeader = []interface{}{"Date", "Job", "Staff ID", "Staff", "Type", "Time In", "Time Out", "Duration", "Hours"}

// WriteTimeRecords renders records as a single-sheet workbook, one row per
// record in ledger order. Times are shown in loc.
func WriteTimeRecords(w io.Writer, records []attendance.TimeRecord, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(recordsDefaultName, RecordsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(RecordsSheet, "A1", &recordsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(RecordsSheet, "A1", "I1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			rec.Date.Format("2006-01-02"),
			rec.JobName,
			rec.StaffID,
			rec.StaffName,
			string(rec.Type),
			rec.TimeIn.In(loc).Format("15:04"),
			rec.TimeOut.In(loc).Format("15:04"),
			attendance.FormatDuration(rec.Duration),
			roundHours(rec.Duration),
		}
		if err := f.SetSheetRow(RecordsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.ID, err)
		}
	}

	if err := f.SetColWidth(RecordsSheet, "B", "B", 36); err != nil {
		return err
	}
	if err := f.SetColWidth(RecordsSheet, "D", "D", 20); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func roundHours(d time.Duration) float64 {
	return d.Round(6*time.Minute).Minutes() / 60
}
