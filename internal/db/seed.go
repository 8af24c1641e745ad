package db

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/washerhq/carwash-api/internal/config"
	"github.com/washerhq/carwash-api/internal/models"
)

// SeedAdminUser creates the admin account from the configured credentials
// if it does not exist yet. Without credentials configured no account is
// created and login stays impossible until one is provisioned.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
	}

	return db.Create(&user).Error
}
