package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrDuplicateReview = errors.New("review already exists for this product")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNoUsersToReview = errors.New("no users available for generated reviews")
)

type ReviewService interface {
	// CreateReview adds a customer review; it goes to moderation
	// (approved=false) and stays invisible until an admin approves it.
	CreateReview(userID, productID uint, rating int, text string) (*model.Review, error)
	GetProductReviews(productID uint) ([]model.Review, error)

	ListReviews(filter repository.ReviewFilter) ([]model.Review, error)
	GetReview(id uint) (*model.Review, error)
	// AdminCreateReview publishes immediately and skips the one-per-user
	// duplicate check.
	AdminCreateReview(userID, productID uint, rating int, text string) (*model.Review, error)
	SetApproval(id uint, approved bool) (*model.Review, error)
	SetAdminResponse(id uint, response string) (*model.Review, error)
	DeleteReview(id uint) error
	// GenerateReviews creates one approved template review per product
	// on behalf of the earliest registered user. Returns (created,
	// productsTotal).
	GenerateReviews() (int, int, error)
	ReconcileReviewCounts() error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (s *reviewService) CreateReview(userID, productID uint, rating int, text string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Read-then-write duplicate check; two simultaneous submissions can
	// both pass it. Accepted for now: the table has no unique pair
	// index, moderation catches the stray duplicate.
	exists, err := s.reviewRepo.ExistsByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Text:      text,
		Approved:  false,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Review submitted for moderation", map[string]interface{}{
		"review_id":  review.ID,
		"user_id":    userID,
		"product_id": productID,
		"rating":     rating,
	})
	return review, nil
}

func (s *reviewService) GetProductReviews(productID uint) ([]model.Review, error) {
	return s.reviewRepo.FindApprovedByProduct(productID)
}

func (s *reviewService) ListReviews(filter repository.ReviewFilter) ([]model.Review, error) {
	return s.reviewRepo.FindAll(filter)
}

func (s *reviewService) GetReview(id uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) AdminCreateReview(userID, productID uint, rating int, text string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	review := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Text:      text,
		Approved:  true,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) SetApproval(id uint, approved bool) (*model.Review, error) {
	review, err := s.reviewRepo.SetApproval(id, approved)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	logger.Info("Review moderation state changed", map[string]interface{}{
		"review_id": id,
		"approved":  approved,
	})
	return review, nil
}

func (s *reviewService) SetAdminResponse(id uint, response string) (*model.Review, error) {
	if err := s.reviewRepo.SetAdminResponse(id, response); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return s.reviewRepo.FindByID(id)
}

func (s *reviewService) DeleteReview(id uint) error {
	if err := s.reviewRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

func (s *reviewService) GenerateReviews() (int, int, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return 0, 0, err
	}
	if len(users) == 0 {
		return 0, 0, ErrNoUsersToReview
	}
	// FindAll sorts newest first; generated reviews belong to the
	// earliest registered account.
	author := users[len(users)-1]

	products, err := s.productRepo.FindAll()
	if err != nil {
		return 0, 0, err
	}

	reviews := make([]model.Review, 0, len(products))
	for _, p := range products {
		reviews = append(reviews, model.Review{
			UserID:    author.ID,
			ProductID: p.ID,
			Rating:    4,
			Text: fmt.Sprintf(
				"Обзор товара \"%s\". %s Ключевые характеристики: категория - %s. Рекомендации по использованию: товар подходит для работы и учёбы. Общий рейтинг: 4/5.",
				p.Title, p.Description, p.Category,
			),
		})
	}

	created, err := s.reviewRepo.CreateApprovedBatch(reviews)
	if err != nil {
		return 0, 0, err
	}

	logger.Info("Generated template reviews", map[string]interface{}{
		"created":  created,
		"products": len(products),
		"user_id":  author.ID,
	})
	return created, len(products), nil
}

func (s *reviewService) ReconcileReviewCounts() error {
	return s.reviewRepo.ReconcileReviewCounts()
}
