package auth

import (
	"context"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/CHOIisaac/chalna-api/services/auth UserRepo

// UserRepo defines the interface for user lookups
type UserRepo interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
