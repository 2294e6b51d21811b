package model

import (
	"time"
)

type Review struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Text          string    `gorm:"not null" json:"text"`
	Approved      bool      `gorm:"default:false;index" json:"approved"` // модерация: только одобренные видны публично
	Likes         int       `gorm:"default:0" json:"likes"`
	AdminResponse *string   `json:"admin_response"`
	CreatedAt     time.Time `json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
