package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

const scheduleColumns = `id, user_id, contact_id, title, event_type, event_time,
	location, estimated_amount, status, transaction_id, memo, created_at, updated_at`

// ScheduleRepo persists schedules in PostgreSQL
type ScheduleRepo struct {
	db *sqlx.DB
}

// NewScheduleRepo creates a new schedule repository instance
func NewScheduleRepo(client *database.PostgresClient) *ScheduleRepo {
	return &ScheduleRepo{db: client.GetDB()}
}

// CreateSchedule inserts a new schedule row
func (r *ScheduleRepo) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	schedule.ID = uuid.New()
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	query := `
		INSERT INTO schedules (id, user_id, contact_id, title, event_type,
			event_time, location, estimated_amount, status, transaction_id,
			memo, created_at, updated_at
		) VALUES (:id, :user_id, :contact_id, :title, :event_type,
			:event_time, :location, :estimated_amount, :status, :transaction_id,
			:memo, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}

	return nil
}

// GetSchedule retrieves a schedule owned by the user
func (r *ScheduleRepo) GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*models.Schedule, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules WHERE id = $1 AND user_id = $2`, scheduleColumns)

	var schedule models.Schedule
	err := r.db.GetContext(ctx, &schedule, query, scheduleID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("schedule")
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return &schedule, nil
}

// ListSchedules returns one page of schedules ordered by event time.
// UpcomingOnly and TodayOnly narrow on event_time relative to now.
func (r *ScheduleRepo) ListSchedules(ctx context.Context, userID uuid.UUID, filter models.ScheduleFilter, page models.PageRequest) ([]models.Schedule, int64, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		where += fmt.Sprintf(" AND event_type = $%d", len(args))
	}
	if filter.UpcomingOnly {
		where += " AND event_time >= NOW()"
	}
	if filter.TodayOnly {
		where += " AND event_time >= date_trunc('day', NOW()) AND event_time < date_trunc('day', NOW()) + INTERVAL '1 day'"
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM schedules " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count schedules: %w", err)
	}

	args = append(args, page.Limit, page.Offset())
	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM schedules
		%s
		ORDER BY event_time ASC, created_at ASC
		LIMIT $%d OFFSET $%d
	`, scheduleColumns, where, len(args)-1, len(args))

	rows := []models.Schedule{}
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list schedules: %w", err)
	}

	return rows, total, nil
}

// UpdateSchedule writes every mutable column of the schedule row
func (r *ScheduleRepo) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	schedule.UpdatedAt = time.Now()

	query := `
		UPDATE schedules
		SET contact_id = :contact_id, title = :title, event_type = :event_type,
			event_time = :event_time, location = :location,
			estimated_amount = :estimated_amount, status = :status,
			transaction_id = :transaction_id, memo = :memo,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, schedule)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check schedule update: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("schedule")
	}

	return nil
}

// DeleteSchedule removes a schedule row
func (r *ScheduleRepo) DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM schedules WHERE id = $1 AND user_id = $2", scheduleID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check schedule delete: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("schedule")
	}

	return nil
}
