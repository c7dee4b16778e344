package staff

import "strings"

type Role string

const (
	RoleCleaner    Role = "Cleaner"
	RoleSupervisor Role = "Supervisor"
	RoleDriver     Role = "Driver"
	RoleCarer      Role = "Carer"
	RoleGardener   Role = "Gardener"
)

// AllRoles returns every role a staff member can hold
func AllRoles() []Role {
	return []Role{RoleCleaner, RoleSupervisor, RoleDriver, RoleCarer, RoleGardener}
}

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	for _, role := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// Identity is either the logged-in staff member or the stand-in resolved from
// a temp card. It never changes during an attendance interval.
type Identity struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Role Role   `json:"role" yaml:"role"`
}

// NewIdentity builds an Identity, rejecting blank fields and unknown roles.
func NewIdentity(id, name string, role Role) (Identity, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Identity{}, ErrStaffIDRequired
	}
	if name == "" {
		return Identity{}, ErrStaffNameRequired
	}
	if !role.IsValid() {
		return Identity{}, ErrInvalidRole
	}
	return Identity{ID: id, Name: name, Role: role}, nil
}

// IsSupervisor checks if the staff member supervises a kiosk
func (i Identity) IsSupervisor() bool {
	return i.Role == RoleSupervisor
}
