package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

var (
	ErrAlreadyFavorite  = errors.New("product already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteService interface {
	GetFavorites(userID uint) ([]model.Favorite, error)
	AddFavorite(userID, productID uint) (*model.Favorite, error)
	RemoveFavorite(userID, productID uint) error
	IsFavorite(userID, productID uint) (bool, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

func (s *favoriteService) GetFavorites(userID uint) ([]model.Favorite, error) {
	return s.favoriteRepo.FindByUserID(userID)
}

func (s *favoriteService) AddFavorite(userID, productID uint) (*model.Favorite, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	favorite := &model.Favorite{UserID: userID, ProductID: productID}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		// The (user_id, product_id) pair is unique; let the index
		// arbitrate instead of a racy pre-check.
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	logger.Debug("Favorite added", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	return favorite, nil
}

func (s *favoriteService) RemoveFavorite(userID, productID uint) error {
	affected, err := s.favoriteRepo.Delete(userID, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *favoriteService) IsFavorite(userID, productID uint) (bool, error) {
	return s.favoriteRepo.Exists(userID, productID)
}
