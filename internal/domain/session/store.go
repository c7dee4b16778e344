package session

import "context"

// Keys written by the kiosk session. Only the attendance tracker may write the
// active* keys; auth owns KeyCurrentUser.
const (
	KeyActiveJobID     = "activeJobId"
	KeyActiveProxyCard = "activeProxyCard"
	KeyActiveSince     = "activeSince"
	KeyActiveStaff     = "activeStaff"
	KeyActiveRecordID  = "activeRecordId"
	KeyCurrentUser     = "currentUser"
)

// Store is the key-value persistence behind a kiosk session.
type Store interface {
	// Get returns ok=false when key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key
	Set(ctx context.Context, key string, value string) error

	// Delete removes keys; absent keys are ignored
	Delete(ctx context.Context, keys ...string) error
}
