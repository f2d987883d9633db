package handlers

import (
	"fmt"
	"net/http"

	"user-service/internal/domain/user"
	"user-service/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService user.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// GetUserByUsername handles GET /api/users/username/:username
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	u, err := h.userService.ValidateAndGetUserByUsername(c.Request.Context(), username)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, u.ToResponse())
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		details := validator.FormatValidationError(err)
		writeError(c, http.StatusBadRequest, errorCodeBadRequest,
			fmt.Sprintf("Validation failed. Error count: %d", len(details)), details)
		return
	}

	u, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u.ToResponse())
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, errorCodeBadRequest, "Invalid user ID format", nil)
		return
	}

	var req user.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errorCodeBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		details := validator.FormatValidationError(err)
		writeError(c, http.StatusBadRequest, errorCodeBadRequest,
			fmt.Sprintf("Validation failed. Error count: %d", len(details)), details)
		return
	}

	u, err := h.userService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, u.ToResponse())
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, errorCodeBadRequest, "Invalid user ID format", nil)
		return
	}

	u, err := h.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, u.ToResponse())
}
