package job

type JobResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ServiceType string  `json:"service_type"`
	WorkerRate  float64 `json:"worker_rate"`
}

type ChecklistResponse struct {
	JobID       string   `json:"job_id"`
	ServiceType string   `json:"service_type"`
	Items       []string `json:"items"`
}

func NewJobResponse(j Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Name:        j.Name,
		ServiceType: j.ServiceType,
		WorkerRate:  j.WorkerRate,
	}
}
