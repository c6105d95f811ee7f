package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/CHOIisaac/chalna-api/services/stats StatsUC

// StatsUC defines the read-only aggregation use cases
type StatsUC interface {
	Dashboard(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.DashboardStats, error)
	Monthly(ctx context.Context, userID uuid.UUID, year int) (*models.MonthlyBreakdown, error)
	ByEventType(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.GroupedStats, error)
	ByRelationship(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.GroupedStats, error)
}
