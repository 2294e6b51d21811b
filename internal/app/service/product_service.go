package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/pkg/logger"
	"github.com/blueberries/blueberries-backend/pkg/util"
)

var ErrProductFieldsRequired = errors.New("title, description and price are required")

// ProductInput is the admin product form. Price arrives as the legacy
// display string ("9000 рублей") and is split into amount and unit.
type ProductInput struct {
	Title       string
	Description string
	Price       string
	Category    string
	Video       *string
	Poster      *string
	Image       *string
}

type ProductService interface {
	GetProducts() ([]model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	CreateProduct(input ProductInput) (*model.Product, error)
	UpdateProduct(id uint, input ProductInput) (*model.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(input ProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Price) == "" {
		return nil, ErrProductFieldsRequired
	}

	category := input.Category
	if category == "" {
		category = "other"
	}

	product := &model.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       util.ParsePrice(input.Price),
		PriceUnit:   util.ParsePriceUnit(input.Price),
		Category:    category,
		Video:       input.Video,
		Poster:      input.Poster,
		Image:       input.Image,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.PriceDisplay = util.FormatPrice(product.Price, product.PriceUnit)

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})
	return product, nil
}

func (s *productService) UpdateProduct(id uint, input ProductInput) (*model.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		product.Title = input.Title
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != "" {
		product.Price = util.ParsePrice(input.Price)
		product.PriceUnit = util.ParsePriceUnit(input.Price)
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Video != nil {
		product.Video = input.Video
	}
	if input.Poster != nil {
		product.Poster = input.Poster
	}
	if input.Image != nil {
		product.Image = input.Image
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	product.PriceDisplay = util.FormatPrice(product.Price, product.PriceUnit)
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
