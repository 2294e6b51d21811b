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
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostOwner       = errors.New("post belongs to another user")
	ErrPostFieldsRequired = errors.New("title and content are required")
)

type PostInput struct {
	Title     string
	Content   string
	Category  string
	ProductID *uint
}

type PostService interface {
	// GetPosts lists posts, optionally only those attached to a product.
	GetPosts(productID uint) ([]model.Post, error)
	GetPost(id uint) (*model.Post, error)
	CreatePost(userID uint, input PostInput) (*model.Post, error)
	// UpdatePost and DeletePost enforce ownership: only the author may
	// touch a post.
	UpdatePost(id, userID uint, input PostInput) (*model.Post, error)
	DeletePost(id, userID uint) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) GetPosts(productID uint) ([]model.Post, error) {
	return s.postRepo.FindAll(productID)
}

func (s *postService) GetPost(id uint) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) CreatePost(userID uint, input PostInput) (*model.Post, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrPostFieldsRequired
	}

	category := input.Category
	if category == "" {
		category = "review"
	}

	post := &model.Post{
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		Category:  category,
		ProductID: input.ProductID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	logger.Info("Post created", map[string]interface{}{
		"post_id": post.ID,
		"user_id": userID,
	})
	return post, nil
}

func (s *postService) UpdatePost(id, userID uint, input PostInput) (*model.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.Category != "" {
		post.Category = input.Category
	}
	if input.ProductID != nil {
		post.ProductID = input.ProductID
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) DeletePost(id, userID uint) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}
	return s.postRepo.Delete(id)
}
