package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/pkg/util"
)

type Music struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Price     float64   `gorm:"not null" json:"price"`
	PriceUnit string    `gorm:"not null;default:'рублей'" json:"price_unit"`
	Image     *string   `json:"image"`
	Audio     *string   `json:"audio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PriceDisplay string `gorm:"-" json:"price_display"`
}

func (Music) TableName() string {
	return "music"
}

func (m *Music) AfterFind(*gorm.DB) error {
	m.PriceDisplay = util.FormatPrice(m.Price, m.PriceUnit)
	return nil
}
