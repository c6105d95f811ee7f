package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/CHOIisaac/chalna-api/services/stats StatsRepo,StatsCache

// StatsRepo reads ledger aggregates. Every method runs inside a REPEATABLE
// READ read-only database transaction so one response never mixes two
// snapshots of the log.
type StatsRepo interface {
	// PeriodTotals sums the current and the immediately preceding window
	// in one snapshot
	PeriodTotals(ctx context.Context, userID uuid.UUID, cur, prev models.PeriodWindow) (models.PeriodTotals, models.PeriodTotals, error)

	// MonthlyTotals returns per-month income/expense rows for the year;
	// months with no transactions are absent
	MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) ([]models.MonthlyStat, error)

	// GroupTotals returns count and total per categorical key inside the
	// window, grouped by the given dimension
	GroupTotals(ctx context.Context, userID uuid.UUID, window models.PeriodWindow, dimension GroupDimension) ([]models.GroupStat, error)
}

// GroupDimension selects the categorical grouping column
type GroupDimension string

const (
	GroupByEventType    GroupDimension = "event_type"
	GroupByRelationship GroupDimension = "relationship_type"
)

// StatsCache stores computed dashboard stats for a short TTL
type StatsCache interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.DashboardStats, error)
	SetDashboard(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod, dashboard *models.DashboardStats, ttl time.Duration) error
}
