package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/jwt"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// Login checks the credentials and issues a bearer token. Unknown users and
// wrong passwords produce the same error so usernames cannot be probed.
func (uc *AuthUC) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError(map[string]string{
			"credentials": "username and password are required",
		})
	}

	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account disabled: %w", apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Username, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
