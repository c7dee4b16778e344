package fixtures

import (
	"testing"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/domain/schedule"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_DefaultSeed(t *testing.T) {
	seed, err := Load("", time.UTC)
	require.NoError(t, err)

	require.Len(t, seed.Jobs, 4)
	assert.Equal(t, "job001", seed.Jobs[0].ID)
	assert.Equal(t, "Deep Cleaning - Smith Residence", seed.Jobs[0].Name)

	assert.Len(t, seed.Checklists["Gardening"], 4)

	maria, ok := seed.TempCards["A1B2C3"]
	require.True(t, ok)
	assert.Equal(t, staff.Identity{ID: "staff005", Name: "Maria Lopez", Role: staff.RoleCleaner}, maria)

	require.Len(t, seed.Credentials, 4)
	sarah := seed.Credentials[0]
	assert.Equal(t, "staff001", sarah.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(sarah.PINHash), []byte("1234")))

	assert.Len(t, seed.Shifts, 9)
	require.Len(t, seed.PastShifts, 3)
	assert.Equal(t, schedule.PastShiftNeedsCorrection, seed.PastShifts[2].Status)
	assert.Equal(t, 15, seed.PastShifts[0].CheckOut.Hour())
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"no jobs", "jobs: []\n"},
		{"bad card", "jobs: [{id: job001, name: A, service_type: Gardening, worker_rate: 1}]\ntemp_cards: [{code: 'A1-2', id: staff009, name: X, role: Cleaner}]\n"},
		{"bad role", "jobs: [{id: job001, name: A, service_type: Gardening, worker_rate: 1}]\nstaff: [{id: staff001, name: X, role: Pilot, pin: '1234'}]\n"},
		{"duplicate job", "jobs: [{id: job001, name: A, service_type: Gardening, worker_rate: 1}, {id: job001, name: B, service_type: Gardening, worker_rate: 1}]\n"},
		{"bad shift", "jobs: [{id: job001, name: A, service_type: Gardening, worker_rate: 1}]\nshifts: [{date: '2025-10-06', type: External, name: Hotel, hours: '16:00-08:00'}]\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml), time.UTC)
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptyCatalog(t *testing.T) {
	_, err := Parse([]byte("jobs: []\n"), time.UTC)
	assert.ErrorIs(t, err, job.ErrEmptyCatalog)
}
