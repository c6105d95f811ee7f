package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// ListNotifications returns one page of notifications with the paging
// envelope
func (uc *NotificationUC) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, page models.PageRequest) ([]models.Notification, models.Pagination, error) {
	page = page.Normalize()

	rows, total, err := uc.notificationRepo.ListNotifications(ctx, userID, unreadOnly, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return rows, models.NewPagination(page, total), nil
}

// MarkRead marks a single notification as read. Repeating the call is a
// no-op; the original read_at survives.
func (uc *NotificationUC) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return uc.notificationRepo.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead marks every unread notification of the user
func (uc *NotificationUC) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}

// DeleteNotification removes a notification
func (uc *NotificationUC) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	return uc.notificationRepo.DeleteNotification(ctx, userID, notificationID)
}

// NotifyTransactionRecorded creates the in-app confirmation for a committed
// ledger write
func (uc *NotificationUC) NotifyTransactionRecorded(ctx context.Context, event models.TransactionEvent) error {
	verb := "given"
	if event.Direction == constants.DirectionReceived {
		verb = "received"
	}

	notification := &models.Notification{
		UserID:  event.UserID,
		Title:   "Transaction recorded",
		Message: fmt.Sprintf("%s of %d KRW %s was recorded", event.EventType, event.Amount, verb),
	}

	return uc.notificationRepo.CreateNotification(ctx, notification)
}
