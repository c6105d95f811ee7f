package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "chalna-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name        string
		userID      uuid.UUID
		username    string
		expectError bool
	}{
		{
			name:        "Valid token generation",
			userID:      uuid.New(),
			username:    "isaac",
			expectError: false,
		},
		{
			name:        "Empty username",
			userID:      uuid.New(),
			username:    "",
			expectError: false, // Should still generate token
		},
		{
			name:        "Zero UUID",
			userID:      uuid.UUID{},
			username:    "isaac",
			expectError: false, // Should still generate token
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.username, cfg)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			// Token must round-trip through validation
			claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, tt.userID.String(), (*claims)["user_id"])
			assert.Equal(t, tt.username, (*claims)["username"])
			assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
		})
	}
}

func TestValidateToken_InvalidSecret(t *testing.T) {
	cfg := getTestConfig()
	tokenString, _, err := GenerateToken(uuid.New(), "isaac", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "wrong-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	claims := jwt.MapClaims{
		"user_id":  uuid.New().String(),
		"username": "isaac",
		"exp":      time.Now().Add(-time.Hour).Unix(),
		"iss":      cfg.JWT.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	parsed, err := ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
