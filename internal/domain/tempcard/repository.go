package tempcard

import "github.com/ncl-services/ncl-backend-go/internal/domain/staff"

// Registry maps physical temp card codes to stand-in staff identities. It has
// no write path; bindings come from fixtures.
type Registry interface {
	// Resolve normalizes code to uppercase and reports whether it is bound
	Resolve(code string) (staff.Identity, bool)
}
