package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/ncl-services/ncl-backend-go/internal/handler/http/response"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/export"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
)

type TimekeepingHandler interface {
	State(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	ExportRecords(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ProxyCheckIn(w http.ResponseWriter, r *http.Request)
	ProxyCheckOut(w http.ResponseWriter, r *http.Request)
}

type timekeepingHandlerImpl struct {
	tracker attendance.Tracker
	loc     *time.Location
}

func NewTimekeepingHandler(tracker attendance.Tracker, loc *time.Location) TimekeepingHandler {
	if loc == nil {
		loc = time.Local
	}
	return &timekeepingHandlerImpl{
		tracker: tracker,
		loc:     loc,
	}
}

// State implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) State(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.tracker.Snapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.NewStateResponse(snapshot, h.loc))
}

// Stats implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tracker.DerivedStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.NewStatsResponse(stats))
}

// Records implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) Records(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Pagination
	var filter attendance.RecordListFilter
	var errs validator.ValidationErrors
	for key, dst := range map[string]*int{"page": &filter.Page, "limit": &filter.Limit} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: key, Message: key + " must be a number"})
			continue
		}
		*dst = n
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.tracker.ListRecords(ctx, filter.ToRecordFilter())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, attendance.NewTimeRecordResponses(records, h.loc), &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Count: len(records),
	})
}

// ExportRecords streams the full ledger as an XLSX workbook
func (h *timekeepingHandlerImpl) ExportRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.tracker.ListRecords(r.Context(), attendance.RecordFilter{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Render into memory first so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := export.WriteTimeRecords(&buf, records, h.loc); err != nil {
		slog.Error("Failed to export time records", "error", err)
		response.InternalServerError(w, "Failed to export time records")
		return
	}

	filename := fmt.Sprintf("time-records-%s.xlsx", time.Now().In(h.loc).Format("2006-01-02"))
	w.Header().Set("Content-Type", export.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write export", "error", err)
	}
}

// CheckIn implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.SelfCheckInRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	snapshot, err := h.tracker.SelfCheckIn(r.Context(), req.JobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Successfully checked in!", attendance.NewStateResponse(snapshot, h.loc))
}

// CheckOut implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.tracker.SelfCheckOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Successfully checked out. Well done!", attendance.NewTimeRecordResponse(record, h.loc))
}

// ProxyCheckIn implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) ProxyCheckIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProxyCard(w, r)
	if !ok {
		return
	}

	snapshot, err := h.tracker.ProxyCheckIn(r.Context(), req.CardCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Proxy check-in successful"
	if snapshot.ProxyStaff != nil && snapshot.Job != nil {
		message = fmt.Sprintf("Proxy check-in successful for %s. Assigned to %s.", snapshot.ProxyStaff.Name, snapshot.Job.Name)
	}
	response.SuccessWithMessage(w, message, attendance.NewStateResponse(snapshot, h.loc))
}

// ProxyCheckOut implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) ProxyCheckOut(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProxyCard(w, r)
	if !ok {
		return
	}

	record, err := h.tracker.ProxyCheckOut(r.Context(), req.CardCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w,
		fmt.Sprintf("Proxy check-out successful for %s.", record.StaffName),
		attendance.NewTimeRecordResponse(record, h.loc))
}

func decodeProxyCard(w http.ResponseWriter, r *http.Request) (attendance.ProxyCardRequest, bool) {
	var req attendance.ProxyCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Proxy card decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}
