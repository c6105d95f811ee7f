package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// NotificationRepo persists notifications in PostgreSQL
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository instance
func NewNotificationRepo(client *database.PostgresClient) *NotificationRepo {
	return &NotificationRepo{db: client.GetDB()}
}

// CreateNotification inserts a new notification row
func (r *NotificationRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	notification.ID = uuid.New()
	notification.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (id, user_id, schedule_id, offset_minutes,
			title, message, is_read, read_at, created_at
		) VALUES (:id, :user_id, :schedule_id, :offset_minutes,
			:title, :message, :is_read, :read_at, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// InsertReminder inserts a reminder row unless the (schedule_id,
// offset_minutes) pair already exists. The unique key makes evaluator
// re-runs idempotent.
func (r *NotificationRepo) InsertReminder(ctx context.Context, notification *models.Notification) (bool, error) {
	notification.ID = uuid.New()
	notification.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (id, user_id, schedule_id, offset_minutes,
			title, message, is_read, read_at, created_at
		) VALUES (:id, :user_id, :schedule_id, :offset_minutes,
			:title, :message, :is_read, :read_at, :created_at)
		ON CONFLICT (schedule_id, offset_minutes) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, notification)
	if err != nil {
		return false, fmt.Errorf("failed to insert reminder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check reminder insert: %w", err)
	}

	return affected > 0, nil
}

// ListNotifications returns one page of notifications, newest first
func (r *NotificationRepo) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, page models.PageRequest) ([]models.Notification, int64, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}

	if unreadOnly {
		where += " AND is_read = FALSE"
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM notifications " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	args = append(args, page.Limit, page.Offset())
	listQuery := fmt.Sprintf(`
		SELECT id, user_id, schedule_id, offset_minutes, title, message,
			is_read, read_at, created_at
		FROM notifications
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows := []models.Notification{}
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return rows, total, nil
}

// MarkRead sets read_at once. Marking an already-read notification matches
// the row but leaves its read_at untouched.
func (r *NotificationRepo) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = COALESCE(read_at, $1)
		WHERE id = $2 AND user_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check notification update: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("notification")
	}

	return nil
}

// MarkAllRead marks every unread notification of the user and returns how
// many rows changed
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = $1
		WHERE user_id = $2 AND is_read = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check notification update: %w", err)
	}

	return affected, nil
}

// DeleteNotification removes a notification row
func (r *NotificationRepo) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM notifications WHERE id = $1 AND user_id = $2", notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check notification delete: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("notification")
	}

	return nil
}

// PendingSchedulesDue returns the pending schedules whose event time falls
// inside (from, to]. One bounded query covers a whole evaluator run.
func (r *NotificationRepo) PendingSchedulesDue(ctx context.Context, from, to time.Time) ([]models.Schedule, error) {
	query := `
		SELECT id, user_id, contact_id, title, event_type, event_time,
			location, estimated_amount, status, transaction_id, memo,
			created_at, updated_at
		FROM schedules
		WHERE status = $1 AND event_time > $2 AND event_time <= $3
		ORDER BY event_time ASC
	`

	rows := []models.Schedule{}
	if err := r.db.SelectContext(ctx, &rows, query, constants.SchedulePending, from, to); err != nil {
		return nil, fmt.Errorf("failed to read due schedules: %w", err)
	}

	return rows, nil
}
