package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Checklist(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	catalog job.Catalog
}

func NewJobHandler(catalog job.Catalog) JobHandler {
	return &jobHandlerImpl{catalog: catalog}
}

func (h *jobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.catalog.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, job.NewJobResponse(j))
	}
	response.Success(w, resp)
}

func (h *jobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	j, err := h.catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, job.NewJobResponse(j))
}

// Checklist returns the tasks for the job's service type
func (h *jobHandlerImpl) Checklist(w http.ResponseWriter, r *http.Request) {
	j, err := h.catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items, err := h.catalog.Checklist(r.Context(), j.ServiceType)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, job.ChecklistResponse{
		JobID:       j.ID,
		ServiceType: j.ServiceType,
		Items:       items,
	})
}
