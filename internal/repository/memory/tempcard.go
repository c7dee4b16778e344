package memory

import (
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/ncl-services/ncl-backend-go/internal/domain/tempcard"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
)

type CardRegistry struct {
	bindings map[string]staff.Identity
}

// NewCardRegistry copies bindings, normalizing every code.
func NewCardRegistry(bindings map[string]staff.Identity) *CardRegistry {
	r := &CardRegistry{bindings: make(map[string]staff.Identity, len(bindings))}
	for code, holder := range bindings {
		r.bindings[validator.NormalizeCardCode(code)] = holder
	}
	return r
}

var _ tempcard.Registry = (*CardRegistry)(nil)

// Resolve implements tempcard.Registry.
func (r *CardRegistry) Resolve(code string) (staff.Identity, bool) {
	holder, ok := r.bindings[validator.NormalizeCardCode(code)]
	return holder, ok
}
