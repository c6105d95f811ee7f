package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/CHOIisaac/chalna-api/services/notifications NotificationRepo

// NotificationRepo defines the interface for notification persistence.
// InsertReminder is the idempotency gate of the reminder evaluator: the
// (schedule_id, offset_minutes) unique key makes re-runs insert nothing.
type NotificationRepo interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, page models.PageRequest) ([]models.Notification, int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// InsertReminder inserts a reminder notification unless one already
	// exists for the same schedule and offset; it reports whether a row was
	// actually written
	InsertReminder(ctx context.Context, notification *models.Notification) (bool, error)

	// PendingSchedulesDue returns the pending schedules whose event time
	// falls inside (from, to], the window a single evaluator run covers
	PendingSchedulesDue(ctx context.Context, from, to time.Time) ([]models.Schedule, error)
}
