package auth

import (
	"context"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/CHOIisaac/chalna-api/services/auth AuthUC

// AuthUC defines the interface for authentication use cases
type AuthUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}
