package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ncl-services/ncl-backend-go/internal/domain/auth"
	"github.com/ncl-services/ncl-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	StreamToken(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// getStaffIDFromContext extracts staff_id from the verified JWT
func getStaffIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if staffID, ok := claims["staff_id"].(string); ok {
		return staffID
	}
	return ""
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err, "staff_id", loginReq.StaffID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Welcome, "+tokenResponse.Staff.Name, tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken := jwtauth.TokenFromHeader(r)
	if accessToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), accessToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff logged out", "staff_id", getStaffIDFromContext(r))
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	user, err := a.authService.CurrentUser(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, auth.NewMeResponse(user))
}

// StreamToken issues a short-lived token for the notification stream
func (a *AuthHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	staffID := getStaffIDFromContext(r)
	if staffID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token, err := a.authService.StreamToken(r.Context(), staffID)
	if err != nil {
		slog.Error("StreamToken service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, token)
}
