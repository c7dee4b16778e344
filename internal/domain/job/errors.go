package job

import "errors"

var (
	ErrJobIDRequired       = errors.New("job id is required")
	ErrJobNameRequired     = errors.New("job name is required")
	ErrServiceTypeRequired = errors.New("service type is required")
	ErrNegativeWorkerRate  = errors.New("worker rate must not be negative")
	ErrJobNotFound         = errors.New("job not found")
	ErrEmptyCatalog        = errors.New("job catalog is empty")
)
