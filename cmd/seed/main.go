package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/config"
	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/db"
	"github.com/blueberries/blueberries-backend/pkg/util"
)

const (
	defaultAdminEmail    = "admin@admin.com"
	defaultAdminPassword = "admin"
)

// Creates the admin account, or promotes the existing account with the
// same email. Email and password can be overridden via ADMIN_EMAIL and
// ADMIN_PASSWORD.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(db.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	email := envOr("ADMIN_EMAIL", defaultAdminEmail)
	password := envOr("ADMIN_PASSWORD", defaultAdminPassword)

	userRepo := repository.NewUserRepository(db.GetDB())

	existing, err := userRepo.FindByEmail(email)
	switch {
	case err == nil:
		if existing.Role == model.RoleAdmin {
			fmt.Printf("Admin %s already exists\n", email)
			return
		}
		if err := userRepo.UpdateRole(existing.ID, model.RoleAdmin); err != nil {
			log.Fatal("Failed to promote user:", err)
		}
		fmt.Printf("Promoted existing user %s to admin\n", email)

	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := util.HashPassword(password)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		admin := &model.User{
			Email:    email,
			Password: hash,
			Name:     "Администратор",
			Role:     model.RoleAdmin,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal("Failed to create admin:", err)
		}
		fmt.Printf("Created admin %s\n", email)

	default:
		log.Fatal("Failed to look up admin account:", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
