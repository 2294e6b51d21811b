package model

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing" // заказ в обработке
	OrderStatusCompleted  OrderStatus = "completed"  // заказ выполнен
	OrderStatusCancelled  OrderStatus = "cancelled"  // заказ отменён
)

// ValidOrderStatus reports whether s is a status an admin may assign.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	// ProductID is nullable: deleting a product keeps its orders,
	// the reference just becomes NULL while ProductTitle survives.
	ProductID    *uint       `gorm:"index" json:"product_id"`
	ProductTitle string      `gorm:"not null" json:"product_title"` // снимок названия на момент заказа
	Price        float64     `gorm:"not null" json:"price"`
	Quantity     int         `gorm:"default:1" json:"quantity"`
	Status       OrderStatus `gorm:"type:text;default:'processing'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
