package notifications

import (
	"context"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/CHOIisaac/chalna-api/services/notifications NotificationGW

// NotificationGW defines the outbound dependencies of the notification
// service
type NotificationGW interface {
	PublishReminderDue(ctx context.Context, event *models.ReminderEvent) error
}
