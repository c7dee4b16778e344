package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/auth"
	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/domain/schedule"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// ==========================================
// SEED DATA RESULT
// ==========================================

// Seed holds the validated static data the kiosk runs on.
type Seed struct {
	Jobs        []job.Job
	Checklists  map[string][]string
	TempCards   map[string]staff.Identity // normalized card code -> holder
	Credentials []auth.Credential
	Shifts      []schedule.Shift
	PastShifts  []schedule.PastShift
}

// ==========================================
// YAML SHAPES
// ==========================================

type rawSeed struct {
	Jobs       []job.Job           `yaml:"jobs"`
	Checklists map[string][]string `yaml:"checklists"`
	TempCards  []rawCard           `yaml:"temp_cards"`
	Staff      []rawStaff          `yaml:"staff"`
	Shifts     []rawShift          `yaml:"shifts"`
	PastShifts []rawPastShift      `yaml:"past_shifts"`
}

type rawCard struct {
	Code           string `yaml:"code"`
	staff.Identity `yaml:",inline"`
}

type rawStaff struct {
	staff.Identity `yaml:",inline"`
	PIN            string `yaml:"pin"`
	PINHash        string `yaml:"pin_hash"`
}

type rawShift struct {
	Date     string             `yaml:"date"`
	Type     schedule.ShiftType `yaml:"type"`
	Name     string             `yaml:"name"`
	Hours    string             `yaml:"hours"`
	Location string             `yaml:"location"`
	IsBooked bool               `yaml:"is_booked"`
}

type rawPastShift struct {
	ID         string                   `yaml:"id"`
	JobName    string                   `yaml:"job_name"`
	CheckIn    string                   `yaml:"check_in"`
	CheckOut   string                   `yaml:"check_out"`
	TotalHours string                   `yaml:"total_hours"`
	Status     schedule.PastShiftStatus `yaml:"status"`
}

const localTimeLayout = "2006-01-02T15:04:05"

// Load reads the seed at path, or the embedded default when path is empty.
// Past shift times carry no zone and are read in loc.
func Load(path string, loc *time.Location) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixtures file: %w", err)
		}
	}
	return Parse(data, loc)
}

// Parse decodes and validates seed YAML.
func Parse(data []byte, loc *time.Location) (*Seed, error) {
	if loc == nil {
		loc = time.UTC
	}

	var raw rawSeed
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	seed := &Seed{
		Checklists: raw.Checklists,
		TempCards:  make(map[string]staff.Identity, len(raw.TempCards)),
	}
	if seed.Checklists == nil {
		seed.Checklists = map[string][]string{}
	}

	seenJobs := make(map[string]bool, len(raw.Jobs))
	for i, j := range raw.Jobs {
		built, err := job.New(j.ID, j.Name, j.ServiceType, j.WorkerRate)
		if err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		if seenJobs[built.ID] {
			return nil, fmt.Errorf("jobs[%d]: duplicate job id %q", i, built.ID)
		}
		seenJobs[built.ID] = true
		seed.Jobs = append(seed.Jobs, built)
	}
	if len(seed.Jobs) == 0 {
		return nil, job.ErrEmptyCatalog
	}

	for i, c := range raw.TempCards {
		code := validator.NormalizeCardCode(c.Code)
		if !validator.IsValidCardCode(code) {
			return nil, fmt.Errorf("temp_cards[%d]: invalid card code %q", i, c.Code)
		}
		holder, err := staff.NewIdentity(c.ID, c.Name, c.Role)
		if err != nil {
			return nil, fmt.Errorf("temp_cards[%d]: %w", i, err)
		}
		if _, dup := seed.TempCards[code]; dup {
			return nil, fmt.Errorf("temp_cards[%d]: duplicate card code %q", i, code)
		}
		seed.TempCards[code] = holder
	}

	for i, s := range raw.Staff {
		identity, err := staff.NewIdentity(s.ID, s.Name, s.Role)
		if err != nil {
			return nil, fmt.Errorf("staff[%d]: %w", i, err)
		}
		hash := s.PINHash
		if hash == "" {
			if !validator.IsValidPIN(s.PIN) {
				return nil, fmt.Errorf("staff[%d]: PIN must be 4 to 8 digits", i)
			}
			generated, err := bcrypt.GenerateFromPassword([]byte(s.PIN), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("staff[%d]: failed to hash PIN: %w", i, err)
			}
			hash = string(generated)
		}
		seed.Credentials = append(seed.Credentials, auth.Credential{Identity: identity, PINHash: hash})
	}

	for i, s := range raw.Shifts {
		shift, err := schedule.NewShift(s.Date, s.Type, s.Name, s.Hours, s.Location, s.IsBooked)
		if err != nil {
			return nil, fmt.Errorf("shifts[%d]: %w", i, err)
		}
		seed.Shifts = append(seed.Shifts, shift)
	}

	for i, p := range raw.PastShifts {
		checkIn, err := time.ParseInLocation(localTimeLayout, p.CheckIn, loc)
		if err != nil {
			return nil, fmt.Errorf("past_shifts[%d]: invalid check_in: %w", i, err)
		}
		checkOut, err := time.ParseInLocation(localTimeLayout, p.CheckOut, loc)
		if err != nil {
			return nil, fmt.Errorf("past_shifts[%d]: invalid check_out: %w", i, err)
		}
		seed.PastShifts = append(seed.PastShifts, schedule.PastShift{
			ID:         p.ID,
			JobName:    p.JobName,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			TotalHours: p.TotalHours,
			Status:     p.Status,
		})
	}

	return seed, nil
}
