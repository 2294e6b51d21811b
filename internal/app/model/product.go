package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/pkg/util"
)

type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	PriceUnit   string    `gorm:"not null;default:'рублей'" json:"price_unit"`
	Category    string    `gorm:"default:'other'" json:"category"`
	Video       *string   `json:"video"`
	Poster      *string   `json:"poster"`
	Image       *string   `json:"image"`
	ReviewCount int       `gorm:"default:0" json:"review_count"` // количество одобренных обзоров
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// PriceDisplay is derived from Price and PriceUnit; clients render
	// it verbatim ("9000 рублей").
	PriceDisplay string `gorm:"-" json:"price_display"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) AfterFind(*gorm.DB) error {
	p.PriceDisplay = util.FormatPrice(p.Price, p.PriceUnit)
	return nil
}
