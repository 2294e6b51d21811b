package repository

import (
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

// OrderFilter narrows admin order listings. Zero values mean "no filter".
type OrderFilter struct {
	Status    model.OrderStatus
	UserID    uint
	ProductID uint
	Search    string // substring match on product_title
}

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByUserID(userID uint) ([]model.Order, error)
	FindAll(filter OrderFilter) ([]model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) error
	Cancel(id, userID uint) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"user_id":    order.UserID,
		"product_id": order.ProductID,
		"quantity":   order.Quantity,
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"user_id": order.UserID,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("User").Preload("Product").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUserID(userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindAll(filter OrderFilter) ([]model.Order, error) {
	query := r.db.Preload("User").Order("created_at DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Search != "" {
		query = query.Where("product_title LIKE ?", "%"+filter.Search+"%")
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		logger.Error("Failed to list orders", err)
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(id uint, status model.OrderStatus) error {
	result := r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		logger.Error("Failed to update order status", result.Error, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Cancel marks the user's order cancelled. The returned count is zero
// when the order does not exist, belongs to someone else or is already
// cancelled; callers cannot tell these apart, which matches the API
// contract (a 404 either way).
func (r *orderRepository) Cancel(id, userID uint) (int64, error) {
	result := r.db.Model(&model.Order{}).
		Where("id = ? AND user_id = ? AND status <> ?", id, userID, model.OrderStatusCancelled).
		Update("status", model.OrderStatusCancelled)
	if result.Error != nil {
		logger.Error("Failed to cancel order", result.Error, map[string]interface{}{
			"order_id": id,
			"user_id":  userID,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
