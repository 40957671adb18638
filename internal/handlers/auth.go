package handlers

import (
	"errors"

	"github.com/devyhq/devy-backend/internal/middleware"
	"github.com/devyhq/devy-backend/internal/services"
	"github.com/devyhq/devy-backend/pkg/logger"
	"github.com/devyhq/devy-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthHandler(auth *services.AuthService, users *services.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Register handles user registration
// POST /api/users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.auth.Register(&req)
	if err != nil {
		logger.Warn().Str("email", services.NormalizeEmail(req.Email)).Err(err).Msg("registration failed")
		respondAuthError(c, err)
		return
	}

	logger.Info().Str("email", result.User.Email).Msg("user registered")
	response.OK(c, "User registered successfully", result)
}

// Login handles user login
// POST /api/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.auth.Login(&req)
	if err != nil {
		logger.Warn().Str("email", services.NormalizeEmail(req.Email)).Msg("login failed")
		respondAuthError(c, err)
		return
	}

	logger.Info().Str("email", result.User.Email).Msg("user logged in")
	response.OK(c, "Login successful", result)
}

// Refresh exchanges a refresh token for a new credential pair
// POST /api/users/refresh-token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req services.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.auth.Refresh(&req)
	if err != nil {
		logger.Warn().Msg("token refresh failed")
		respondAuthError(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", result)
}

// Me returns the current authenticated user
// GET /api/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Invalid or expired token")
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error().Err(err).Msg("failed to load current user")
		response.ServerError(c)
		return
	}

	response.OK(c, "", user)
}

// respondAuthError maps service failures onto the API envelope. Business
// failures keep their uniform messages; everything else becomes a generic 500.
func respondAuthError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, "Validation failed", verr.Problems...)
	case errors.Is(err, services.ErrEmailTaken):
		response.BadRequest(c, "Email already registered", "A user with this email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials", "Email or password is incorrect")
	case errors.Is(err, services.ErrAccountInactive):
		response.Unauthorized(c, "Account is inactive", "Your account has been deactivated")
	case errors.Is(err, services.ErrInvalidRefreshToken):
		response.Unauthorized(c, "Invalid or expired refresh token")
	default:
		logger.Error().Err(err).Msg("auth flow failed")
		response.ServerError(c)
	}
}
