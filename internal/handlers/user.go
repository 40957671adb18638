package handlers

import (
	"errors"
	"strconv"

	"github.com/devyhq/devy-backend/internal/services"
	"github.com/devyhq/devy-backend/pkg/logger"
	"github.com/devyhq/devy-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return uuid.Nil, false
	}
	return id, true
}

// GetByID returns a single user
// GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error().Err(err).Msg("failed to load user")
		response.ServerError(c)
		return
	}

	response.OK(c, "", user)
}

// List returns a page of users, newest first
// GET /api/users?page=1&page_size=20
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	paged, err := h.users.List(page, pageSize)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list users")
		response.ServerError(c)
		return
	}

	response.OK(c, "", paged)
}

// Update applies a partial profile update
// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.users.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error().Err(err).Msg("failed to update user")
		response.ServerError(c)
		return
	}

	response.OK(c, "User updated successfully", user)
}

// Delete removes an account
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error().Err(err).Msg("failed to delete user")
		response.ServerError(c)
		return
	}

	response.OK(c, "User deleted successfully", true)
}
