package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/stats"
)

// StatsRepo reads ledger aggregates from PostgreSQL
type StatsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new stats repository instance
func NewStatsRepo(client *database.PostgresClient) *StatsRepo {
	return &StatsRepo{db: client.GetDB()}
}

// snapshotTx opens a REPEATABLE READ read-only transaction so every read in
// one response sees the same state of the ledger
func (r *StatsRepo) snapshotTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	return tx, nil
}

const periodTotalsQuery = `
	SELECT
		COALESCE(SUM(amount) FILTER (WHERE direction = 'given'), 0) AS total_given,
		COALESCE(SUM(amount) FILTER (WHERE direction = 'received'), 0) AS total_received,
		COUNT(*) AS event_count
	FROM transactions
	WHERE user_id = $1 AND event_date >= $2 AND event_date < $3
`

// PeriodTotals sums the current and the preceding window in one snapshot
func (r *StatsRepo) PeriodTotals(ctx context.Context, userID uuid.UUID, cur, prev models.PeriodWindow) (models.PeriodTotals, models.PeriodTotals, error) {
	var curTotals, prevTotals models.PeriodTotals

	tx, err := r.snapshotTx(ctx)
	if err != nil {
		return curTotals, prevTotals, err
	}
	defer tx.Rollback()

	if err := tx.GetContext(ctx, &curTotals, periodTotalsQuery, userID, cur.From, cur.To); err != nil {
		return curTotals, prevTotals, fmt.Errorf("failed to sum current period: %w", err)
	}
	if err := tx.GetContext(ctx, &prevTotals, periodTotalsQuery, userID, prev.From, prev.To); err != nil {
		return curTotals, prevTotals, fmt.Errorf("failed to sum previous period: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return curTotals, prevTotals, fmt.Errorf("failed to close snapshot: %w", err)
	}

	return curTotals, prevTotals, nil
}

// MonthlyTotals returns per-month income/expense rows for the year
func (r *StatsRepo) MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) ([]models.MonthlyStat, error) {
	tx, err := r.snapshotTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		SELECT
			EXTRACT(MONTH FROM event_date)::int AS month,
			COALESCE(SUM(amount) FILTER (WHERE direction = 'received'), 0) AS income,
			COALESCE(SUM(amount) FILTER (WHERE direction = 'given'), 0) AS expense
		FROM transactions
		WHERE user_id = $1 AND EXTRACT(YEAR FROM event_date) = $2
		GROUP BY month
		ORDER BY month
	`

	rows := []models.MonthlyStat{}
	if err := tx.SelectContext(ctx, &rows, query, userID, year); err != nil {
		return nil, fmt.Errorf("failed to read monthly totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to close snapshot: %w", err)
	}

	return rows, nil
}

// GroupTotals returns count and total per categorical key inside the window
func (r *StatsRepo) GroupTotals(ctx context.Context, userID uuid.UUID, window models.PeriodWindow, dimension stats.GroupDimension) ([]models.GroupStat, error) {
	tx, err := r.snapshotTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var query string
	switch dimension {
	case stats.GroupByEventType:
		query = `
			SELECT t.event_type AS key, COUNT(*) AS count, SUM(t.amount) AS total_amount
			FROM transactions t
			WHERE t.user_id = $1 AND t.event_date >= $2 AND t.event_date < $3
			GROUP BY t.event_type
		`
	case stats.GroupByRelationship:
		query = `
			SELECT c.relationship_type AS key, COUNT(*) AS count, SUM(t.amount) AS total_amount
			FROM transactions t
			JOIN contacts c ON c.id = t.contact_id
			WHERE t.user_id = $1 AND t.event_date >= $2 AND t.event_date < $3
			GROUP BY c.relationship_type
		`
	default:
		return nil, fmt.Errorf("unknown group dimension: %s", dimension)
	}

	rows := []models.GroupStat{}
	if err := tx.SelectContext(ctx, &rows, query, userID, window.From, window.To); err != nil {
		return nil, fmt.Errorf("failed to read group totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to close snapshot: %w", err)
	}

	return rows, nil
}
