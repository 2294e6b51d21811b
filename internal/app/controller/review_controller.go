package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type CreateReviewRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// Create submits a review for moderation
// POST /api/reviews
func (ctrl *ReviewController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Укажите товар, рейтинг и текст обзора")
		return
	}

	review, err := ctrl.reviewService.CreateReview(userID, req.ProductID, req.Rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, "Рейтинг должен быть от 1 до 5")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, "Товар не найден")
		case errors.Is(err, service.ErrDuplicateReview):
			apperrors.Conflict(c, "Вы уже оставили обзор на этот товар")
		default:
			log.Error("Failed to create review", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": req.ProductID,
			})
			apperrors.InternalError(c, apperrors.ParseError(err, "review"))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Обзор отправлен на модерацию",
		"review":  review,
	})
}

// ListByProduct returns approved reviews for a product
// GET /api/reviews/product/:productId
func (ctrl *ReviewController) ListByProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.GetProductReviews(productID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
