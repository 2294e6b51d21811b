package repository

import (
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

type FavoriteRepository interface {
	Create(favorite *model.Favorite) error
	FindByUserID(userID uint) ([]model.Favorite, error)
	Delete(userID, productID uint) (int64, error)
	Exists(userID, productID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(favorite *model.Favorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		logger.Error("Failed to add favorite", err, map[string]interface{}{
			"user_id":    favorite.UserID,
			"product_id": favorite.ProductID,
		})
		return err
	}
	return nil
}

func (r *favoriteRepository) FindByUserID(userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		logger.Error("Failed to list favorites", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Delete(userID, productID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		logger.Error("Failed to remove favorite", result.Error, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *favoriteRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
