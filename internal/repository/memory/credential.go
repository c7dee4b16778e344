package memory

import (
	"context"

	"github.com/ncl-services/ncl-backend-go/internal/domain/auth"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
)

type CredentialRepository struct {
	byID map[string]auth.Credential
}

func NewCredentialRepository(credentials []auth.Credential) *CredentialRepository {
	r := &CredentialRepository{byID: make(map[string]auth.Credential, len(credentials))}
	for _, c := range credentials {
		r.byID[c.ID] = c
	}
	return r
}

var _ auth.CredentialRepository = (*CredentialRepository)(nil)

// GetByStaffID implements auth.CredentialRepository.
func (r *CredentialRepository) GetByStaffID(ctx context.Context, staffID string) (auth.Credential, error) {
	c, ok := r.byID[staffID]
	if !ok {
		return auth.Credential{}, staff.ErrStaffNotFound
	}
	return c, nil
}
