package repository

import (
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	// FindAll lists posts newest first; productID zero means no filter.
	FindAll(productID uint) ([]model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		logger.Error("Failed to create post", err, map[string]interface{}{
			"user_id": post.UserID,
			"title":   post.Title,
		})
		return err
	}
	return nil
}

func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("User").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll(productID uint) ([]model.Post, error) {
	query := r.db.Preload("User").Order("created_at DESC")
	if productID != 0 {
		query = query.Where("product_id = ?", productID)
	}

	var posts []model.Post
	if err := query.Find(&posts).Error; err != nil {
		logger.Error("Failed to list posts", err)
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		logger.Error("Failed to update post", err, map[string]interface{}{
			"post_id": post.ID,
		})
		return err
	}
	return nil
}

func (r *postRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Post{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete post", result.Error, map[string]interface{}{
			"post_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
