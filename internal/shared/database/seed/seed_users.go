package seed

import (
	"context"
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"

	"go-storefront-api/internal/auth"
)

// SeedUsers inserts a couple of well-known dev accounts. Existing emails are
// left alone so the seeder is safe to re-run.
func SeedUsers(db *sql.DB) error {
	ctx := context.Background()
	repo := auth.NewRepository(db)

	users := []struct {
		Name     string
		Email    string
		Password string
	}{
		{
			Name:     "Demo Shopper",
			Email:    "shopper@example.com",
			Password: "shopper123",
		},
		{
			Name:     "Demo Admin",
			Email:    "admin@example.com",
			Password: "admin123",
		},
	}

	for _, u := range users {
		if _, err := repo.GetByEmail(ctx, u.Email); err == nil {
			log.Printf("[SEED] User %s already exists, skipping", u.Email)
			continue
		} else if err != sql.ErrNoRows {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if _, err := repo.Create(ctx, auth.CreateUserParams{
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hashed),
		}); err != nil {
			return err
		}
		log.Printf("[SEED] Created user %s", u.Email)
	}

	return nil
}
