package staff

import "errors"

var (
	ErrStaffIDRequired   = errors.New("staff id is required")
	ErrStaffNameRequired = errors.New("staff name is required")
	ErrInvalidRole       = errors.New("invalid staff role")
	ErrStaffNotFound     = errors.New("staff member not found")
)
