package auth

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/config"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

// SeedAdminUser creates the bootstrap admin account if it does not exist.
// Safe to run on every startup.
func SeedAdminUser(repo Repository, cfg *config.Config) error {
	if _, err := repo.FindByEmail(cfg.AdminEmail); err == nil {
		log.Println("Admin user already exists")
		return nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Role:         RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(admin); err != nil {
		if errors.Is(err, apperror.ErrDuplicateEmail) {
			return nil
		}
		return err
	}

	log.Printf("✅ Created admin user: %s", cfg.AdminEmail)
	return nil
}
