package auth

import "context"

type CredentialRepository interface {
	// GetByStaffID returns staff.ErrStaffNotFound for unknown ids
	GetByStaffID(ctx context.Context, staffID string) (Credential, error)
}
