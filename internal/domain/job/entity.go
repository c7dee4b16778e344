package job

import "strings"

// Job is a static catalog entry. Attendance tracking only reads it.
type Job struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	ServiceType string  `yaml:"service_type"`
	WorkerRate  float64 `yaml:"worker_rate"`
}

// New builds a Job, rejecting blank fields and negative rates.
func New(id, name, serviceType string, workerRate float64) (Job, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	serviceType = strings.TrimSpace(serviceType)

	if id == "" {
		return Job{}, ErrJobIDRequired
	}
	if name == "" {
		return Job{}, ErrJobNameRequired
	}
	if serviceType == "" {
		return Job{}, ErrServiceTypeRequired
	}
	if workerRate < 0 {
		return Job{}, ErrNegativeWorkerRate
	}

	return Job{
		ID:          id,
		Name:        name,
		ServiceType: serviceType,
		WorkerRate:  workerRate,
	}, nil
}
