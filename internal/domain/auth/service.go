package auth

import (
	"context"

	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context) (session.CurrentUser, error)
	StreamToken(ctx context.Context, staffID string) (StreamTokenResponse, error)
}
