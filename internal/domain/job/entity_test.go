package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	j, err := New("job001", "Deep Cleaning - Smith Residence", "Deep Clean", 150)
	require.NoError(t, err)
	assert.Equal(t, "job001", j.ID)
	assert.Equal(t, 150.0, j.WorkerRate)

	cases := []struct {
		name    string
		id      string
		jobName string
		service string
		rate    float64
		wantErr error
	}{
		{"missing id", "", "Name", "Deep Clean", 1, ErrJobIDRequired},
		{"missing name", "job001", " ", "Deep Clean", 1, ErrJobNameRequired},
		{"missing service type", "job001", "Name", "", 1, ErrServiceTypeRequired},
		{"negative rate", "job001", "Name", "Deep Clean", -1, ErrNegativeWorkerRate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.id, c.jobName, c.service, c.rate)
			assert.ErrorIs(t, err, c.wantErr)
		})
	}
}
