package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
)

// CurrentUser is the authenticated staff member stored under KeyCurrentUser.
type CurrentUser struct {
	staff.Identity
	IsStaff   bool      `json:"isStaff"`
	LastLogin time.Time `json:"lastLogin"`
}

// LoadCurrentUser decodes the stored user. ok is false when nobody is logged in.
func LoadCurrentUser(ctx context.Context, store Store) (user CurrentUser, ok bool, err error) {
	raw, ok, err := store.Get(ctx, KeyCurrentUser)
	if err != nil || !ok {
		return CurrentUser{}, false, err
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return CurrentUser{}, false, fmt.Errorf("failed to decode %s: %w", KeyCurrentUser, err)
	}
	return user, true, nil
}

// SaveCurrentUser encodes and stores user under KeyCurrentUser.
func SaveCurrentUser(ctx context.Context, store Store, user CurrentUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyCurrentUser, err)
	}
	return store.Set(ctx, KeyCurrentUser, string(raw))
}
