package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/stats"
)

// Dashboard returns period totals with change rates against the preceding
// window. Results are cached per (user, period); cache failures fall through
// to the database.
func (uc *StatsUC) Dashboard(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.DashboardStats, error) {
	if !constants.ValidStatsPeriod(period) {
		return nil, apperrors.NewValidationError(map[string]string{
			"period": "unknown period",
		})
	}

	if cached, err := uc.cache.GetDashboard(ctx, userID, period); err != nil {
		logger.Warn("Dashboard cache read failed", logger.Err(err))
	} else if cached != nil {
		return cached, nil
	}

	cur, prev, err := periodWindows(period, uc.now())
	if err != nil {
		return nil, err
	}

	curTotals, prevTotals, err := uc.statsRepo.PeriodTotals(ctx, userID, cur, prev)
	if err != nil {
		return nil, err
	}

	dashboard := &models.DashboardStats{
		Period:         string(period),
		TotalGiven:     curTotals.TotalGiven,
		TotalReceived:  curTotals.TotalReceived,
		EventCount:     curTotals.EventCount,
		GivenChange:    changeRate(prevTotals.TotalGiven, curTotals.TotalGiven),
		ReceivedChange: changeRate(prevTotals.TotalReceived, curTotals.TotalReceived),
	}

	ttl := time.Duration(constants.DashboardStatsTTL) * time.Second
	if err := uc.cache.SetDashboard(ctx, userID, period, dashboard, ttl); err != nil {
		logger.Warn("Dashboard cache write failed", logger.Err(err))
	}

	return dashboard, nil
}

// Monthly returns the zero-filled per-month breakdown for a year with the
// best and worst months by net; ties resolve to the earliest month
func (uc *StatsUC) Monthly(ctx context.Context, userID uuid.UUID, year int) (*models.MonthlyBreakdown, error) {
	if year < 1900 || year > 2200 {
		return nil, apperrors.NewValidationError(map[string]string{
			"year": "year is out of range",
		})
	}

	rows, err := uc.statsRepo.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	months := make([]models.MonthlyStat, 12)
	for i := range months {
		months[i].Month = i + 1
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		months[row.Month-1].Income = row.Income
		months[row.Month-1].Expense = row.Expense
	}

	best, worst := 1, 1
	for i := range months {
		months[i].Net = months[i].Income - months[i].Expense
		if months[i].Net > months[best-1].Net {
			best = months[i].Month
		}
		if months[i].Net < months[worst-1].Net {
			worst = months[i].Month
		}
	}

	return &models.MonthlyBreakdown{
		Year:       year,
		Months:     months,
		BestMonth:  best,
		WorstMonth: worst,
	}, nil
}

// ByEventType groups the period's transactions by event type
func (uc *StatsUC) ByEventType(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.GroupedStats, error) {
	return uc.grouped(ctx, userID, period, stats.GroupByEventType)
}

// ByRelationship groups the period's transactions by the contact's
// relationship type
func (uc *StatsUC) ByRelationship(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod) (*models.GroupedStats, error) {
	return uc.grouped(ctx, userID, period, stats.GroupByRelationship)
}

func (uc *StatsUC) grouped(ctx context.Context, userID uuid.UUID, period constants.StatsPeriod, dimension stats.GroupDimension) (*models.GroupedStats, error) {
	cur, _, err := periodWindows(period, uc.now())
	if err != nil {
		return nil, err
	}

	groups, err := uc.statsRepo.GroupTotals(ctx, userID, cur, dimension)
	if err != nil {
		return nil, err
	}

	return finalizeGroups(string(period), groups), nil
}

// finalizeGroups derives averages and percentages from the raw group rows
// and orders them deterministically: total desc, then key asc
func finalizeGroups(period string, groups []models.GroupStat) *models.GroupedStats {
	var grandTotal int64
	for _, g := range groups {
		grandTotal += g.TotalAmount
	}

	for i := range groups {
		if groups[i].Count > 0 {
			groups[i].AverageAmount = round1(float64(groups[i].TotalAmount) / float64(groups[i].Count))
		}
		if grandTotal > 0 {
			groups[i].Percentage = round1(float64(groups[i].TotalAmount) / float64(grandTotal) * 100)
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TotalAmount != groups[j].TotalAmount {
			return groups[i].TotalAmount > groups[j].TotalAmount
		}
		return groups[i].Key < groups[j].Key
	})

	return &models.GroupedStats{
		Period:     period,
		GrandTotal: grandTotal,
		Groups:     groups,
	}
}
