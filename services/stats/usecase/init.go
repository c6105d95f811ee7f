package usecase

import (
	"time"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/stats"
)

// StatsUC implements the read-only aggregation use cases
type StatsUC struct {
	statsRepo stats.StatsRepo
	cache     stats.StatsCache
	cfg       *models.Config
	now       func() time.Time
}

// NewStatsUC creates a new stats usecase instance
func NewStatsUC(statsRepo stats.StatsRepo, cache stats.StatsCache, cfg *models.Config) *StatsUC {
	return &StatsUC{
		statsRepo: statsRepo,
		cache:     cache,
		cfg:       cfg,
		now:       time.Now,
	}
}
