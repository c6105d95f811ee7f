package gateway

import (
	"context"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	natspkg "github.com/CHOIisaac/chalna-api/internal/pkg/nats"
)

// NotificationGW publishes notification events to NATS
type NotificationGW struct {
	producer *natspkg.Producer
}

// NewNotificationGW creates a new notification gateway instance
func NewNotificationGW(producer *natspkg.Producer) *NotificationGW {
	return &NotificationGW{producer: producer}
}

// PublishReminderDue publishes a fired reminder
func (g *NotificationGW) PublishReminderDue(ctx context.Context, event *models.ReminderEvent) error {
	return g.producer.Publish(constants.SubjectReminderDue, event)
}
