package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/feliperb/gympoint/internal/app/models"
	appRepos "github.com/feliperb/gympoint/internal/app/repositories"
	"github.com/feliperb/gympoint/internal/pkg/auth"
)

const (
	defaultAdminName  = "Admin"
	defaultAdminEmail = "admin@gympoint.com"
	// Matches the credentials the frontend ships with for first login
	defaultAdminPassword = "123456"
)

// CreateDefaultData creates the default administrator account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check default admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &appModels.User{
		Name:         defaultAdminName,
		Email:        defaultAdminEmail,
		PasswordHash: hash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default administrator account created")
	return nil
}
