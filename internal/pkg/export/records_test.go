package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTimeRecords(t *testing.T) {
	timeIn := time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC)
	records := []attendance.TimeRecord{
		{
			ID:        "r2",
			JobName:   "Deep Cleaning - Smith Residence",
			StaffID:   "staff005",
			StaffName: "Maria Lopez",
			TimeIn:    timeIn,
			TimeOut:   timeIn.Add(4*time.Hour + 30*time.Minute),
			Duration:  4*time.Hour + 30*time.Minute,
			Type:      attendance.RecordTypeProxy,
			Date:      time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTimeRecords(&buf, records, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, []string{"2025-10-06", "Deep Cleaning - Smith Residence", "staff005", "Maria Lopez", "Proxy", "08:00", "12:30", "4h 30m", "4.5"}, rows[1])
}

func TestWriteTimeRecords_DateKeepsCalendarDay(t *testing.T) {
	ny := time.FixedZone("EDT", -4*60*60)

	timeIn := time.Date(2025, 10, 6, 8, 0, 0, 0, ny)
	records := []attendance.TimeRecord{
		{
			ID:       "r1",
			JobName:  "Standard Cleaning - Jones Apartment",
			TimeIn:   timeIn,
			TimeOut:  timeIn.Add(time.Hour),
			Duration: time.Hour,
			Type:     attendance.RecordTypeSelf,
			Date:     time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTimeRecords(&buf, records, ny))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-10-06", rows[1][0])
	assert.Equal(t, "08:00", rows[1][5])
}

func TestWriteTimeRecords_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimeRecords(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
