// internal/storage/seed.go
package storage

import (
	"context"

	"github.com/google/uuid"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
	"hrms_backend/internal/utils"
)

const (
	SeedAdminEmail    = "admin@hrms.com"
	seedAdminPassword = "admin123"
)

// ensureAdmin seeds the fixed administrator account unless a user with
// its email already exists.
func ensureAdmin(ctx context.Context, s Store) error {
	_, err := s.UserByEmail(ctx, SeedAdminEmail)
	if err == nil {
		return nil
	}
	if apperror.GetCode(err) != apperror.CodeNotFound {
		return err
	}

	hash, err := utils.HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	salary := 100000.0
	admin := &models.User{
		ID:         uuid.NewString(),
		Name:       "Admin User",
		Email:      SeedAdminEmail,
		Password:   hash,
		Role:       models.RoleAdmin,
		Position:   "System Administrator",
		Department: "IT",
		JoinDate:   "2024-01-01",
		Salary:     &salary,
	}
	return s.CreateUser(ctx, admin)
}
