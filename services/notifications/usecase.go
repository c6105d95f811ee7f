package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/CHOIisaac/chalna-api/services/notifications NotificationUC

// NotificationUC defines the interface for notification use cases
type NotificationUC interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, page models.PageRequest) ([]models.Notification, models.Pagination, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// NotifyTransactionRecorded creates the in-app confirmation for a
	// committed ledger write
	NotifyTransactionRecorded(ctx context.Context, event models.TransactionEvent) error

	// EvaluateReminders runs one reminder pass at the given instant and
	// returns how many reminders fired
	EvaluateReminders(ctx context.Context, now time.Time) (int, error)
}
