package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/auth"
	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.CredentialRepository
	jwt.Service
	store session.Store
	now   func() time.Time
}

func NewAuthService(credentialRepository auth.CredentialRepository, jwtService jwt.Service, store session.Store) auth.AuthService {
	return &AuthServiceImpl{
		CredentialRepository: credentialRepository,
		Service:              jwtService,
		store:                store,
		now:                  time.Now,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	credential, err := a.CredentialRepository.GetByStaffID(ctx, loginReq.StaffID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get credential by staff ID: %w", err)
	}

	// Cek PIN
	if err := bcrypt.CompareHashAndPassword([]byte(credential.PINHash), []byte(loginReq.PIN)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(credential.Identity)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	err = session.SaveCurrentUser(ctx, a.store, session.CurrentUser{
		Identity:  credential.Identity,
		IsStaff:   true,
		LastLogin: a.now(),
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save current user: %w", err)
	}

	slog.Info("Staff logged in", "staff_id", credential.ID, "role", credential.Role)
	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
		Staff:                credential.Identity,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string) error {
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}
	if err := a.store.Delete(ctx, session.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}

// CurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) CurrentUser(ctx context.Context) (session.CurrentUser, error) {
	user, ok, err := session.LoadCurrentUser(ctx, a.store)
	if err != nil {
		return session.CurrentUser{}, fmt.Errorf("failed to load current user: %w", err)
	}
	if !ok {
		return session.CurrentUser{}, auth.ErrNotLoggedIn
	}
	return user, nil
}

// StreamToken implements auth.AuthService.
func (a *AuthServiceImpl) StreamToken(ctx context.Context, staffID string) (auth.StreamTokenResponse, error) {
	token, expiresIn, err := a.Service.GenerateStreamToken(staffID)
	if err != nil {
		return auth.StreamTokenResponse{}, fmt.Errorf("failed to create stream token: %w", err)
	}
	return auth.StreamTokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
