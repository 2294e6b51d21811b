package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type PostController struct {
	postService service.PostService
}

func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

type PostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	ProductID *uint  `json:"productId"`
}

// List returns blog posts, optionally filtered by product
// GET /api/posts?productId=
func (ctrl *PostController) List(c *gin.Context) {
	var productID uint
	if parsed, err := strconv.ParseUint(c.Query("productId"), 10, 32); err == nil {
		productID = uint(parsed)
	}

	posts, err := ctrl.postService.GetPosts(productID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Get returns a single post
// GET /api/posts/:id
func (ctrl *PostController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := ctrl.postService.GetPost(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, "Пост не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Create adds a blog post
// POST /api/posts
func (ctrl *PostController) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Заголовок и текст обязательны")
		return
	}

	post, err := ctrl.postService.CreatePost(userID, service.PostInput{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		ProductID: req.ProductID,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostFieldsRequired) {
			apperrors.BadRequest(c, "Заголовок и текст обязательны")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Update edits the caller's post
// PUT /api/posts/:id
func (ctrl *PostController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	post, err := ctrl.postService.UpdatePost(id, userID, service.PostInput{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		ProductID: req.ProductID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			apperrors.NotFound(c, "Пост не найден")
		case errors.Is(err, service.ErrNotPostOwner):
			apperrors.Forbidden(c, "Можно редактировать только свои посты")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete removes the caller's post
// DELETE /api/posts/:id
func (ctrl *PostController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.postService.DeletePost(id, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			apperrors.NotFound(c, "Пост не найден")
		case errors.Is(err, service.ErrNotPostOwner):
			apperrors.Forbidden(c, "Можно удалять только свои посты")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Пост удалён"})
}
