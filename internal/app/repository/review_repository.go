package repository

import (
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

// ReviewFilter narrows admin review listings.
type ReviewFilter struct {
	ProductID uint
	UserID    uint
	Rating    int
	Approved  *bool
}

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindApprovedByProduct(productID uint) ([]model.Review, error)
	FindAll(filter ReviewFilter) ([]model.Review, error)
	ExistsByUserAndProduct(userID, productID uint) (bool, error)
	SetApproval(id uint, approved bool) (*model.Review, error)
	SetAdminResponse(id uint, response string) error
	Delete(id uint) error
	CreateApprovedBatch(reviews []model.Review) (int, error)
	ReconcileReviewCounts() error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	logger.Debug("Creating review in database", map[string]interface{}{
		"user_id":    review.UserID,
		"product_id": review.ProductID,
		"rating":     review.Rating,
		"approved":   review.Approved,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		if review.Approved {
			return recountProduct(tx, review.ProductID)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create review in database", err, map[string]interface{}{
			"user_id":    review.UserID,
			"product_id": review.ProductID,
		})
		return err
	}
	return nil
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.Preload("User").Preload("Product").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindApprovedByProduct(productID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.Preload("User").
		Where("product_id = ? AND approved = ?", productID, true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		logger.Error("Failed to find approved reviews", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindAll(filter ReviewFilter) ([]model.Review, error) {
	query := r.db.Preload("User").Preload("Product").Order("created_at DESC")
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Rating != 0 {
		query = query.Where("rating = ?", filter.Rating)
	}
	if filter.Approved != nil {
		query = query.Where("approved = ?", *filter.Approved)
	}

	var reviews []model.Review
	if err := query.Find(&reviews).Error; err != nil {
		logger.Error("Failed to list reviews", err)
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ExistsByUserAndProduct(userID, productID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetApproval flips moderation state and recounts the product's
// approved reviews in the same transaction, so review_count never
// drifts from the reviews table.
func (r *reviewRepository) SetApproval(id uint, approved bool) (*model.Review, error) {
	var review model.Review
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&review).Update("approved", approved).Error; err != nil {
			return err
		}
		return recountProduct(tx, review.ProductID)
	})
	if err != nil {
		logger.Error("Failed to set review approval", err, map[string]interface{}{
			"review_id": id,
			"approved":  approved,
		})
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) SetAdminResponse(id uint, response string) error {
	result := r.db.Model(&model.Review{}).Where("id = ?", id).Update("admin_response", response)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recountProduct(tx, review.ProductID)
	})
	if err != nil {
		logger.Error("Failed to delete review", err, map[string]interface{}{
			"review_id": id,
		})
		return err
	}
	return nil
}

// CreateApprovedBatch inserts pre-approved reviews and recounts every
// touched product. Returns how many reviews were actually created;
// per-review failures (constraint violations on rating or foreign
// keys) are skipped, matching the tolerant bulk-generation endpoint.
func (r *reviewRepository) CreateApprovedBatch(reviews []model.Review) (int, error) {
	created := 0
	touched := make(map[uint]struct{})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range reviews {
			reviews[i].Approved = true
			if err := tx.Create(&reviews[i]).Error; err != nil {
				logger.Warn("Skipping review in batch", map[string]interface{}{
					"product_id": reviews[i].ProductID,
					"error":      err.Error(),
				})
				continue
			}
			created++
			touched[reviews[i].ProductID] = struct{}{}
		}
		for productID := range touched {
			if err := recountProduct(tx, productID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// ReconcileReviewCounts rewrites review_count for every product from
// the reviews table. Run periodically as a safety net.
func (r *reviewRepository) ReconcileReviewCounts() error {
	return r.db.Exec(`
		UPDATE products SET review_count = (
			SELECT COUNT(*) FROM reviews
			WHERE reviews.product_id = products.id AND reviews.approved = ?
		)`, true).Error
}

func recountProduct(tx *gorm.DB, productID uint) error {
	var count int64
	if err := tx.Model(&model.Review{}).
		Where("product_id = ? AND approved = ?", productID, true).
		Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&model.Product{}).
		Where("id = ?", productID).
		Update("review_count", count).Error
}
