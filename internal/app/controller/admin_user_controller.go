package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type AdminUserController struct {
	userService service.UserService
}

func NewAdminUserController(userService service.UserService) *AdminUserController {
	return &AdminUserController{userService: userService}
}

type AdminUserUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// List GET /api/admin/users?search=&role=
func (ctrl *AdminUserController) List(c *gin.Context) {
	users, err := ctrl.userService.ListUsers(repository.UserFilter{
		Search: c.Query("search"),
		Role:   model.UserRole(c.Query("role")),
	})
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get GET /api/admin/users/:id
func (ctrl *AdminUserController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, "Пользователь не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update PUT /api/admin/users/:id
func (ctrl *AdminUserController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	user, err := ctrl.userService.UpdateUser(id, service.UserUpdateInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  model.UserRole(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.NotFound(c, "Пользователь не найден")
		case errors.Is(err, service.ErrInvalidRole):
			apperrors.BadRequest(c, "Некорректная роль пользователя")
		default:
			log.Error("Failed to update user", err, map[string]interface{}{
				"user_id": id,
			})
			apperrors.InternalError(c, apperrors.ParseError(err, "user"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ResetPassword POST /api/admin/users/:id/reset-password
func (ctrl *AdminUserController) ResetPassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Пароль должен содержать не менее 6 символов")
		return
	}

	if err := ctrl.userService.ResetPassword(id, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, "Пользователь не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Пароль сброшен"})
}

// ToggleBlock PATCH /api/admin/users/:id/block
func (ctrl *AdminUserController) ToggleBlock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.userService.ToggleBlock(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.NotFound(c, "Пользователь не найден")
		case errors.Is(err, service.ErrCannotBlockAdmin):
			apperrors.BadRequest(c, "Нельзя заблокировать администратора")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	message := "Пользователь заблокирован"
	if user.Role == model.RoleUser {
		message = "Пользователь разблокирован"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    user,
	})
}
