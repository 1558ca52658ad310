package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nikov/simplenote-backend/internal/api/middleware"
	"github.com/nikov/simplenote-backend/internal/auth"
	"github.com/nikov/simplenote-backend/internal/domain"
	"github.com/nikov/simplenote-backend/internal/service"
	"github.com/nikov/simplenote-backend/pkg/logger"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieTTL    time.Duration
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, cookieTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieTTL:    cookieTTL,
		cookieSecure: cookieSecure,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userEnvelope struct {
	User UserResponse `json:"user"`
}

// CurrentUserResponse is the profile returned by Me. Unlike the register and
// login envelopes it carries the account creation time.
type CurrentUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type currentUserEnvelope struct {
	User CurrentUserResponse `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, token, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordTooShort):
			respondError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		case errors.Is(err, domain.ErrEmailTaken):
			respondError(w, http.StatusConflict, "Email already registered")
		default:
			logger.Sugar.Errorf("registration failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	h.setSessionCookie(w, token)
	respondJSON(w, http.StatusCreated, userEnvelope{User: toUserResponse(user)})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// One message for unknown email and wrong password alike.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Sugar.Errorf("login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, userEnvelope{User: toUserResponse(user)})
}

// Logout clears the cookie. The token itself stays valid until expiry;
// there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Sugar.Errorf("failed to load user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, currentUserEnvelope{User: CurrentUserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}})
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
