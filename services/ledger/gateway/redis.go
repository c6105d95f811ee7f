package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
)

// InvalidateDashboardStats drops the user's cached dashboard stats for
// every period after a ledger write
func (g *LedgerGW) InvalidateDashboardStats(ctx context.Context, userID uuid.UUID) error {
	keys := make([]string, 0, 4)
	for _, period := range []constants.StatsPeriod{
		constants.PeriodThisMonth,
		constants.PeriodLastMonth,
		constants.PeriodThisYear,
		constants.PeriodLastYear,
	} {
		keys = append(keys, fmt.Sprintf(constants.KeyDashboardStats, userID, period))
	}

	return g.redisClient.Delete(ctx, keys...)
}
