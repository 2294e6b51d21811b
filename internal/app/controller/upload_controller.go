package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/middleware"
	"github.com/blueberries/blueberries-backend/internal/storage"

	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
)

// UploadController issues presigned S3 URLs for product and music
// media. Files go straight from the admin panel to the bucket, the
// API never proxies the bytes.
type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: storage}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Folder      string `json:"folder"` // imgs, videos, audios
}

// GeneratePresignedURL POST /api/admin/upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Укажите имя файла и тип содержимого")
		return
	}

	allowedTypes := []string{
		"image/jpeg",
		"image/png",
		"image/webp",
		"video/mp4",
		"audio/mpeg",
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedTypes); err != nil {
		apperrors.BadRequest(c, "Недопустимый тип файла")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "imgs"
	}

	response, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, folder)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
			"folder":   folder,
		})
		apperrors.InternalError(c, "Не удалось подготовить загрузку файла")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uploadUrl": response.UploadURL,
		"fileUrl":   response.FileURL,
		"key":       response.Key,
	})
}
