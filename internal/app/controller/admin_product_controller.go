package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

// AdminProductController manages the catalog from the admin panel.
type AdminProductController struct {
	productService service.ProductService
}

func NewAdminProductController(productService service.ProductService) *AdminProductController {
	return &AdminProductController{productService: productService}
}

type AdminProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       string  `json:"price"` // display form: "9000 рублей"
	Category    string  `json:"category"`
	Video       *string `json:"video"`
	Poster      *string `json:"poster"`
	Image       *string `json:"image"`
}

func (r AdminProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Video:       r.Video,
		Poster:      r.Poster,
		Image:       r.Image,
	}
}

// List GET /api/admin/products
func (ctrl *AdminProductController) List(c *gin.Context) {
	products, err := ctrl.productService.GetProducts()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Get GET /api/admin/products/:id
func (ctrl *AdminProductController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "Товар не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Create POST /api/admin/products
func (ctrl *AdminProductController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Название, описание и цена обязательны")
		return
	}

	product, err := ctrl.productService.CreateProduct(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrProductFieldsRequired) {
			apperrors.BadRequest(c, "Название, описание и цена обязательны")
			return
		}
		log.Error("Failed to create product", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// Update PUT /api/admin/products/:id
func (ctrl *AdminProductController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "Товар не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Delete DELETE /api/admin/products/:id
func (ctrl *AdminProductController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "Товар не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Товар удалён"})
}
