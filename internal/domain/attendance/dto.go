package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type SelfCheckInRequest struct {
	JobID string `json:"job_id" validate:"required,max=32"`
}

func (r *SelfCheckInRequest) Validate() error {
	r.JobID = strings.TrimSpace(r.JobID)
	return validator.Struct(r)
}

type ProxyCardRequest struct {
	CardCode string `json:"card_code" validate:"required,max=32"`
}

// Validate normalizes the card code the way the kiosk input does (trim + uppercase).
func (r *ProxyCardRequest) Validate() error {
	r.CardCode = validator.NormalizeCardCode(r.CardCode)
	return validator.Struct(r)
}

type RecordListFilter struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *RecordListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRecordFilter converts page/limit into a ledger offset window.
func (f RecordListFilter) ToRecordFilter() RecordFilter {
	return RecordFilter{
		Limit:  f.Limit,
		Offset: (f.Page - 1) * f.Limit,
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

type StateResponse struct {
	State       State            `json:"state"`
	ActiveJob   *job.JobResponse `json:"active_job,omitempty"`
	ProxyCard   *string          `json:"proxy_card,omitempty"`
	ProxyStaff  *staff.Identity  `json:"proxy_staff,omitempty"`
	ActiveSince *string          `json:"active_since,omitempty"`
	CanCheckIn  bool             `json:"can_check_in"`
	CanCheckOut bool             `json:"can_check_out"`
	Message     string           `json:"message"`
}

type TimeRecordResponse struct {
	ID        string     `json:"id"`
	JobName   string     `json:"job_name"`
	StaffName string     `json:"staff_name,omitempty"`
	TimeIn    string     `json:"time_in"`
	TimeOut   string     `json:"time_out"`
	Duration  string     `json:"duration"`
	Type      RecordType `json:"type"`
	Date      string     `json:"date"`
}

type StatsResponse struct {
	Hours  string `json:"hours"`
	Jobs   string `json:"jobs"`
	Status string `json:"status"`
}

// FormatDuration renders d as "4h 00m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Minute).Minutes())
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

func NewStateResponse(s Snapshot, loc *time.Location) StateResponse {
	resp := StateResponse{
		State:       s.State,
		ProxyCard:   s.ProxyCard,
		ProxyStaff:  s.ProxyStaff,
		CanCheckIn:  s.State == StateIdle,
		CanCheckOut: s.State != StateIdle,
	}
	if s.Job != nil {
		j := job.NewJobResponse(*s.Job)
		resp.ActiveJob = &j
	}
	if s.Since != nil {
		since := s.Since.In(loc).Format(time.RFC3339)
		resp.ActiveSince = &since
	}

	switch {
	case s.State == StateSelfActive && s.Job != nil:
		resp.Message = "Checked in to " + s.Job.Name
	case s.State == StateProxyActive && s.ProxyStaff != nil:
		resp.Message = "Proxy check-in for " + s.ProxyStaff.Name
	case s.State == StateProxyActive:
		resp.Message = "Proxy check-in for card " + *s.ProxyCard
	default:
		resp.Message = "No job currently active."
	}
	return resp
}

func NewTimeRecordResponse(rec TimeRecord, loc *time.Location) TimeRecordResponse {
	return TimeRecordResponse{
		ID:        rec.ID,
		JobName:   rec.JobName,
		StaffName: rec.StaffName,
		TimeIn:    rec.TimeIn.In(loc).Format("03:04 PM"),
		TimeOut:   rec.TimeOut.In(loc).Format("03:04 PM"),
		Duration:  FormatDuration(rec.Duration),
		Type:      rec.Type,
		Date:      rec.Date.Format("Jan 2"),
	}
}

func NewTimeRecordResponses(records []TimeRecord, loc *time.Location) []TimeRecordResponse {
	resp := make([]TimeRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, NewTimeRecordResponse(rec, loc))
	}
	return resp
}

func NewStatsResponse(s DerivedStats) StatsResponse {
	return StatsResponse{
		Hours:  s.Hours,
		Jobs:   s.Jobs,
		Status: s.Status,
	}
}
