package job

import "context"

// Catalog is the read-only job lookup used by the timekeeping kiosk.
type Catalog interface {
	// List returns every job in catalog order
	List(ctx context.Context) ([]Job, error)

	// GetByID returns ErrJobNotFound for unknown ids
	GetByID(ctx context.Context, id string) (Job, error)

	// First returns the job proxy check-ins are assigned to
	First(ctx context.Context) (Job, error)

	// Checklist returns the task list for a service type, empty when none is defined
	Checklist(ctx context.Context, serviceType string) ([]string, error)
}
