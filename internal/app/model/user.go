package model

import (
	"time"
)

type UserRole string

const (
	RoleUser   UserRole = "user"   // обычный покупатель
	RoleAdmin  UserRole = "admin"  // администратор панели
	RoleBanned UserRole = "banned" // заблокированный пользователь
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Name      string    `json:"name"`
	Role      UserRole  `gorm:"type:text;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may access the admin panel.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsBanned reports whether the user is blocked from logging in.
func (u *User) IsBanned() bool {
	return u.Role == RoleBanned
}
