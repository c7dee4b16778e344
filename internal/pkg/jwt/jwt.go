package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess = "access"
	TokenTypeStream = "stream"
)

const streamTokenTTL = 5 * time.Minute

type Service interface {
	GenerateAccessToken(identity staff.Identity) (token string, expiresAt int64, err error)
	GenerateStreamToken(staffID string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (staffID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpiration time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
		now:                   time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(identity staff.Identity) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"staff_id": identity.ID,
		"name":     identity.Name,
		"role":     string(identity.Role),
		"is_staff": true,
		"type":     TokenTypeAccess,
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now().Unix()
	j.revokedTokens[token] = now

	// Revoked tokens older than one access lifetime have expired anyway.
	cutoff := now - int64(j.accessTokenExpiration.Seconds())
	for t, at := range j.revokedTokens {
		if at < cutoff {
			delete(j.revokedTokens, t)
		}
	}
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// GenerateStreamToken issues a short-lived token for the notification stream.
// EventSource cannot set headers, so it travels as a query parameter.
func (j *JWTService) GenerateStreamToken(staffID string) (token string, expiresIn int, err error) {
	expiresIn = int(streamTokenTTL.Seconds())
	expiresAt := j.now().Add(streamTokenTTL).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"staff_id": staffID,
		"type":     TokenTypeStream,
		"exp":      expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateStreamToken validates a stream token and returns the staff ID
func (j *JWTService) ValidateStreamToken(tokenString string) (staffID string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeStream {
		return "", jwt.ErrInvalidJWT()
	}

	staffIDVal, ok := token.Get("staff_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	staffID, ok = staffIDVal.(string)
	if !ok || staffID == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return staffID, nil
}
