package usecase

import (
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/auth"
)

// AuthUC implements the authentication use cases
type AuthUC struct {
	userRepo auth.UserRepo
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(userRepo auth.UserRepo, cfg *models.Config) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
