package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

type AddFavoriteRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// List returns the caller's favorites
// GET /api/favorites
func (ctrl *FavoriteController) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	favorites, err := ctrl.favoriteService.GetFavorites(userID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// Add puts a product into the caller's favorites
// POST /api/favorites
func (ctrl *FavoriteController) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Не указан товар")
		return
	}

	favorite, err := ctrl.favoriteService.AddFavorite(userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, "Товар не найден")
		case errors.Is(err, service.ErrAlreadyFavorite):
			apperrors.Conflict(c, "Товар уже в избранном")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Товар добавлен в избранное",
		"favorite": favorite,
	})
}

// Remove deletes a product from the caller's favorites
// DELETE /api/favorites/:productId
func (ctrl *FavoriteController) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	if err := ctrl.favoriteService.RemoveFavorite(userID, productID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			apperrors.NotFound(c, "Товар не найден в избранном")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Товар удалён из избранного"})
}

// Check reports whether a product is in the caller's favorites
// GET /api/favorites/check/:productId
func (ctrl *FavoriteController) Check(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	isFavorite, err := ctrl.favoriteService.IsFavorite(userID, productID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}
