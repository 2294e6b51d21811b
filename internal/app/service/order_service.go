package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/pkg/logger"
	"github.com/blueberries/blueberries-backend/pkg/util"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrAddressRequired    = errors.New("delivery address required")
	ErrInvalidCardNumber  = errors.New("invalid card number")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// CreateOrderInput carries the checkout form. Address and card number
// are validated but never stored.
type CreateOrderInput struct {
	ProductID  uint
	Quantity   int
	Address    string
	CardNumber string
}

type OrderService interface {
	CreateOrder(userID uint, input CreateOrderInput) (*model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
	CancelOrder(orderID, userID uint) (*model.Order, error)
	ListOrders(filter repository.OrderFilter) ([]model.Order, error)
	GetOrder(id uint) (*model.Order, error)
	UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *orderService) CreateOrder(userID uint, input CreateOrderInput) (*model.Order, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if input.Address == "" {
		return nil, ErrAddressRequired
	}
	if !util.ValidateCardNumber(input.CardNumber) {
		return nil, ErrInvalidCardNumber
	}

	product, err := s.productRepo.FindByID(input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Title and price are snapshotted: the order survives product
	// deletion and later price changes.
	order := &model.Order{
		UserID:       userID,
		ProductID:    &product.ID,
		ProductTitle: product.Title,
		Price:        product.Price,
		Quantity:     input.Quantity,
		Status:       model.OrderStatusProcessing,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id":   order.ID,
		"user_id":    userID,
		"product_id": product.ID,
		"quantity":   order.Quantity,
	})
	return order, nil
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	return s.orderRepo.FindByUserID(userID)
}

// CancelOrder cancels the user's active order. A missing order, a
// foreign order and an already cancelled order all come back as
// ErrOrderNotFound on purpose: the response must not reveal whether
// the order exists.
func (s *orderService) CancelOrder(orderID, userID uint) (*model.Order, error) {
	affected, err := s.orderRepo.Cancel(orderID, userID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	logger.Info("Order cancelled", map[string]interface{}{
		"order_id": orderID,
		"user_id":  userID,
	})
	return s.orderRepo.FindByID(orderID)
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]model.Order, error) {
	return s.orderRepo.FindAll(filter)
}

func (s *orderService) GetOrder(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.orderRepo.FindByID(id)
}
