package auth

import "github.com/ncl-services/ncl-backend-go/internal/domain/staff"

// Credential is a staff login record. The PIN is only ever held as a bcrypt hash.
type Credential struct {
	staff.Identity
	PINHash string
}
