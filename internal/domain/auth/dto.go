package auth

import (
	"strings"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
	"github.com/ncl-services/ncl-backend-go/internal/domain/staff"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	StaffID string `json:"staff_id" validate:"required,staffid"`
	PIN     string `json:"pin" validate:"required,pin"`
}

func (r *LoginRequest) Validate() error {
	r.StaffID = strings.TrimSpace(r.StaffID)
	return validator.Struct(r)
}

type TokenResponse struct {
	AccessToken          string         `json:"access_token"`
	AccessTokenExpiresIn int64          `json:"access_token_expires_in"`
	Staff                staff.Identity `json:"staff"`
}

type StreamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type MeResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Role      staff.Role `json:"role"`
	IsStaff   bool       `json:"is_staff"`
	LastLogin string     `json:"last_login"`
}

func NewMeResponse(u session.CurrentUser) MeResponse {
	return MeResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		IsStaff:   u.IsStaff,
		LastLogin: u.LastLogin.Format(time.RFC3339),
	}
}
