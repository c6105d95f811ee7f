package usecase

import (
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/notifications"
)

// Reminder offsets used when no offsets are configured: 3 days, 1 day and
// 3 hours before the event.
var defaultReminderOffsets = []int{4320, 1440, 180}

// NotificationUC implements the notification use cases and the reminder
// evaluation pass
type NotificationUC struct {
	notificationRepo notifications.NotificationRepo
	notificationGW   notifications.NotificationGW
	cfg              *models.Config
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(
	notificationRepo notifications.NotificationRepo,
	notificationGW notifications.NotificationGW,
	cfg *models.Config,
) *NotificationUC {
	return &NotificationUC{
		notificationRepo: notificationRepo,
		notificationGW:   notificationGW,
		cfg:              cfg,
	}
}

func (uc *NotificationUC) reminderOffsets() []int {
	if len(uc.cfg.Reminder.OffsetsMinutes) > 0 {
		return uc.cfg.Reminder.OffsetsMinutes
	}
	return defaultReminderOffsets
}
