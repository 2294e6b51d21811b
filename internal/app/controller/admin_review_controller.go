package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type AdminReviewController struct {
	reviewService service.ReviewService
}

func NewAdminReviewController(reviewService service.ReviewService) *AdminReviewController {
	return &AdminReviewController{reviewService: reviewService}
}

type AdminCreateReviewRequest struct {
	UserID    uint   `json:"userId" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

type SetApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type AdminResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

// List GET /api/admin/reviews?productId=&userId=&rating=&approved=
func (ctrl *AdminReviewController) List(c *gin.Context) {
	filter := repository.ReviewFilter{}
	if productID, err := strconv.ParseUint(c.Query("productId"), 10, 32); err == nil {
		filter.ProductID = uint(productID)
	}
	if userID, err := strconv.ParseUint(c.Query("userId"), 10, 32); err == nil {
		filter.UserID = uint(userID)
	}
	if rating, err := strconv.Atoi(c.Query("rating")); err == nil {
		filter.Rating = rating
	}
	if approvedStr := c.Query("approved"); approvedStr != "" {
		approved := approvedStr == "true" || approvedStr == "1"
		filter.Approved = &approved
	}

	reviews, err := ctrl.reviewService.ListReviews(filter)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Get GET /api/admin/reviews/:id
func (ctrl *AdminReviewController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := ctrl.reviewService.GetReview(id)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, "Обзор не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// Create POST /api/admin/reviews — published immediately
func (ctrl *AdminReviewController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdminCreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Укажите пользователя, товар, рейтинг и текст обзора")
		return
	}

	review, err := ctrl.reviewService.AdminCreateReview(req.UserID, req.ProductID, req.Rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, "Рейтинг должен быть от 1 до 5")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, "Товар не найден")
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.NotFound(c, "Пользователь не найден")
		default:
			log.Error("Failed to create admin review", err)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// SetApproval PATCH /api/admin/reviews/:id/approval
func (ctrl *AdminReviewController) SetApproval(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Не указан статус модерации")
		return
	}

	review, err := ctrl.reviewService.SetApproval(id, *req.Approved)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, "Обзор не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// Respond POST /api/admin/reviews/:id/response
func (ctrl *AdminReviewController) Respond(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Текст ответа обязателен")
		return
	}

	review, err := ctrl.reviewService.SetAdminResponse(id, req.Response)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, "Обзор не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// Delete DELETE /api/admin/reviews/:id
func (ctrl *AdminReviewController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.reviewService.DeleteReview(id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, "Обзор не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Обзор удалён"})
}

// Generate POST /api/admin/reviews/generate — one template review per product
func (ctrl *AdminReviewController) Generate(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	created, products, err := ctrl.reviewService.GenerateReviews()
	if err != nil {
		if errors.Is(err, service.ErrNoUsersToReview) {
			apperrors.BadRequest(c, "Нет пользователей для создания обзоров")
			return
		}
		log.Error("Failed to generate reviews", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Создано %d обзоров для %d товаров", created, products),
	})
}
