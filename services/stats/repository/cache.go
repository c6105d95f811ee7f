package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// StatsCache caches computed dashboard stats in Redis
type StatsCache struct {
	redisClient *database.RedisClient
}

// NewStatsCache creates a new stats cache instance
func NewStatsCache(redisClient *database.RedisClient) *StatsCache {
	return &StatsCache{redisClient: redisClient}
}

// GetDashboard returns the cached dashboard or nil on a miss
func (c *StatsCache) GetDashboard(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.DashboardStats, error) {
	key := fmt.Sprintf(constants.KeyDashboardStats, userID, period)

	raw, err := c.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dashboard cache: %w", err)
	}

	var dashboard models.DashboardStats
	if err := json.Unmarshal([]byte(raw), &dashboard); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard cache: %w", err)
	}

	return &dashboard, nil
}

// SetDashboard stores the dashboard with a TTL
func (c *StatsCache) SetDashboard(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod, dashboard *models.DashboardStats, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyDashboardStats, userID, period)

	raw, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard cache: %w", err)
	}

	return c.redisClient.Set(ctx, key, raw, ttl)
}
