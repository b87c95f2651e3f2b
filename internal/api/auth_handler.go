package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type SignupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse excludes the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	Token     string    `json:"token,omitempty"`
}

// --- Handler Methods ---

// Signup registers a new user and returns the user summary together with
// a freshly issued session token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required parameter")
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingParameter):
			respondError(c, http.StatusBadRequest, "Missing required parameter")
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, http.StatusBadRequest, service.ErrWeakPassword.Error())
		case errors.Is(err, service.ErrUserAlreadyExists):
			respondError(c, http.StatusConflict, service.ErrUserAlreadyExists.Error())
		default:
			respondError(c, http.StatusInternalServerError, "An unexpected error occurred during signup")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, "User signed up successfully", mapUserToResponse(user, token))
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required parameter")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingParameter):
			respondError(c, http.StatusBadRequest, "Missing required parameter")
		case errors.Is(err, service.ErrAuthenticationFailed):
			respondError(c, http.StatusUnauthorized, service.ErrAuthenticationFailed.Error())
		default:
			respondError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	respondSuccess(c, http.StatusOK, "User logged in successfully", mapUserToResponse(user, token))
}

// Logout acknowledges the logout. Tokens are bearer credentials with no
// server-side revocation list; the client simply discards its token, which
// stays technically valid until its 8 hour expiry. Accepted trade-off.
func (h *AuthHandler) Logout(c *gin.Context) {
	respondSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

func mapUserToResponse(user *domain.User, token string) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		Token:     token,
	}
}
