package memory

import (
	"context"

	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
)

// Catalog serves a fixed job list. It is read-only after construction.
type Catalog struct {
	jobs       []job.Job
	byID       map[string]job.Job
	checklists map[string][]string
}

func NewCatalog(jobs []job.Job, checklists map[string][]string) *Catalog {
	c := &Catalog{
		jobs:       append([]job.Job(nil), jobs...),
		byID:       make(map[string]job.Job, len(jobs)),
		checklists: make(map[string][]string, len(checklists)),
	}
	for _, j := range jobs {
		c.byID[j.ID] = j
	}
	for serviceType, items := range checklists {
		c.checklists[serviceType] = append([]string(nil), items...)
	}
	return c
}

var _ job.Catalog = (*Catalog)(nil)

// List implements job.Catalog.
func (c *Catalog) List(ctx context.Context) ([]job.Job, error) {
	return append([]job.Job(nil), c.jobs...), nil
}

// GetByID implements job.Catalog.
func (c *Catalog) GetByID(ctx context.Context, id string) (job.Job, error) {
	j, ok := c.byID[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return j, nil
}

// First implements job.Catalog.
func (c *Catalog) First(ctx context.Context) (job.Job, error) {
	if len(c.jobs) == 0 {
		return job.Job{}, job.ErrEmptyCatalog
	}
	return c.jobs[0], nil
}

// Checklist implements job.Catalog.
func (c *Catalog) Checklist(ctx context.Context, serviceType string) ([]string, error) {
	return append([]string{}, c.checklists[serviceType]...), nil
}
