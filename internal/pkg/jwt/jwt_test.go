package jwt

import (
	"testing"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute)

	token, expiresAt, err := svc.GenerateAccessToken(staff.Identity{
		ID:   "staff001",
		Name: "Sarah Mitchell",
		Role: staff.RoleCleaner,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	staffID, _ := decoded.Get("staff_id")
	assert.Equal(t, "staff001", staffID)
	role, _ := decoded.Get("role")
	assert.Equal(t, "Cleaner", role)
	typ, _ := decoded.Get("type")
	assert.Equal(t, TokenTypeAccess, typ)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute)

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
}

func TestStreamToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute)

	token, expiresIn, err := svc.GenerateStreamToken("staff002")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	staffID, err := svc.ValidateStreamToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff002", staffID)
}

func TestValidateStreamToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute)

	access, _, err := svc.GenerateAccessToken(staff.Identity{ID: "staff001", Name: "Sarah Mitchell", Role: staff.RoleCleaner})
	require.NoError(t, err)

	_, err = svc.ValidateStreamToken(access)
	assert.Error(t, err)
}
