package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fieldtrack/fieldtrack/internal/repositories/user Repository

import (
	"context"

	"github.com/fieldtrack/fieldtrack/internal/models"
)

// Repository defines read access to workers and their companies
type Repository interface {
	// GetUserByTelegramID retrieves a registered worker by Telegram user ID
	GetUserByTelegramID(ctx context.Context, input *GetUserByTelegramIDInput) (*models.User, error)

	// GetUser retrieves a worker by internal ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetCompany retrieves a company by ID
	GetCompany(ctx context.Context, input *GetCompanyInput) (*models.Company, error)
}
