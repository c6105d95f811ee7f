package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// UserRepo reads user accounts from PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(client *database.PostgresClient) *UserRepo {
	return &UserRepo{db: client.GetDB()}
}

// GetUserByUsername retrieves an active user by username
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, full_name, is_active, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
