package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the single error envelope every endpoint returns.
// Clients read the error field verbatim, so messages stay in Russian.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError writes the error envelope with the given status.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// Shortcuts for the common status codes. An empty message falls back
// to the generic wording clients already know.

func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Некорректный запрос"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Необходима авторизация"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Доступ запрещён"
	}
	RespondWithError(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Ресурс не найден"
	}
	RespondWithError(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	RespondWithError(c, http.StatusConflict, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Внутренняя ошибка сервера"
	}
	RespondWithError(c, http.StatusInternalServerError, message)
}
