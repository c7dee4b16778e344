package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/ncl-services/ncl-backend-go/internal/domain/auth"
	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyActive):
		Conflict(w, "A job is already active. Please check out first.")
	case errors.Is(err, attendance.ErrNoActiveAttendance):
		Conflict(w, "No job currently active.")
	case errors.Is(err, attendance.ErrProxyActive):
		Conflict(w, "The active job was opened with a temp card. Use Proxy Check-Out.")
	case errors.Is(err, attendance.ErrCardMismatch):
		Conflict(w, "Card is not the currently checked-in proxy.")
	case errors.Is(err, attendance.ErrUnknownCard):
		NotFound(w, "Card ID not recognized")
	case errors.Is(err, attendance.ErrUnknownJob):
		NotFound(w, "Job not recognized")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid Staff ID or PIN.")
	case errors.Is(err, auth.ErrNotLoggedIn):
		Unauthorized(w, "No staff member is logged in")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
