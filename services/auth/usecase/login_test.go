package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/auth/mocks"
)

func setupAuthUC(t *testing.T) (*AuthUC, *mocks.MockUserRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(repo, &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "chalna-api",
		},
	})
	return uc, repo, ctrl
}

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Username:     "minjun",
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		uc, repo, ctrl := setupAuthUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			GetUserByUsername(gomock.Any(), "minjun").
			Return(activeUser(t, "correct horse"), nil)

		resp, err := uc.Login(context.Background(), models.LoginRequest{
			Username: "minjun",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Greater(t, resp.ExpiresAt, int64(0))
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo, ctrl := setupAuthUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			GetUserByUsername(gomock.Any(), "minjun").
			Return(activeUser(t, "correct horse"), nil)

		_, err := uc.Login(context.Background(), models.LoginRequest{
			Username: "minjun",
			Password: "battery staple",
		})
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("unknown user maps to the same error as a bad password", func(t *testing.T) {
		uc, repo, ctrl := setupAuthUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			GetUserByUsername(gomock.Any(), "nobody").
			Return(nil, apperrors.NotFound("user"))

		_, err := uc.Login(context.Background(), models.LoginRequest{
			Username: "nobody",
			Password: "whatever",
		})
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
		assert.False(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("disabled account", func(t *testing.T) {
		uc, repo, ctrl := setupAuthUC(t)
		defer ctrl.Finish()

		user := activeUser(t, "correct horse")
		user.IsActive = false
		repo.EXPECT().GetUserByUsername(gomock.Any(), "minjun").Return(user, nil)

		_, err := uc.Login(context.Background(), models.LoginRequest{
			Username: "minjun",
			Password: "correct horse",
		})
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("blank credentials", func(t *testing.T) {
		uc, _, ctrl := setupAuthUC(t)
		defer ctrl.Finish()

		_, err := uc.Login(context.Background(), models.LoginRequest{Username: "  ", Password: ""})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}
