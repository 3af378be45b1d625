package seeders

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/config"
	"github.com/shashiranjanraj/leadhub/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers creates one admin (the first allow-listed address) and one demo
// customer. Existing accounts are left alone so the seeder is re-runnable.
func SeedUsers(ctx context.Context) error {
	repo := repositories.NewUserRepository()

	adminEmail := "admin@leadhub.com"
	if list := config.AdminEmails(); len(list) > 0 {
		adminEmail = list[0]
	}

	seeds := []struct {
		email, password, name, role string
	}{
		{adminEmail, "admin12345", "LeadHub Admin", models.RoleAdmin},
		{"demo@leadhub.com", "demo12345", "Demo Customer", models.RoleCustomer},
	}

	for _, s := range seeds {
		if _, err := repo.FindByEmail(ctx, s.email); err == nil {
			continue
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		hash, err := auth.HashPassword(s.password)
		if err != nil {
			return err
		}
		user := models.User{
			Email:       s.email,
			Password:    hash,
			DisplayName: s.name,
			Role:        s.role,
			CreatedAt:   time.Now(),
		}
		if err := repo.Create(ctx, &user); err != nil {
			return err
		}
	}
	return nil
}
