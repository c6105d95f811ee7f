package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	natspkg "github.com/CHOIisaac/chalna-api/internal/pkg/nats"
	"github.com/CHOIisaac/chalna-api/services/notifications"
)

// TransactionConsumer turns committed ledger writes into in-app
// confirmation notifications
type TransactionConsumer struct {
	consumer       *natspkg.Consumer
	notificationUC notifications.NotificationUC
}

// NewTransactionConsumer creates a new transaction consumer instance
func NewTransactionConsumer(consumer *natspkg.Consumer, notificationUC notifications.NotificationUC) *TransactionConsumer {
	return &TransactionConsumer{
		consumer:       consumer,
		notificationUC: notificationUC,
	}
}

// Start subscribes to ledger.transaction.recorded in the notifications
// queue group so one API instance handles each event
func (c *TransactionConsumer) Start(ctx context.Context) error {
	return c.consumer.Subscribe(constants.SubjectTransactionRecorded, constants.QueueGroupNotifications, func(data []byte) error {
		return c.handleTransactionRecorded(ctx, data)
	})
}

func (c *TransactionConsumer) handleTransactionRecorded(ctx context.Context, data []byte) error {
	var event models.TransactionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode transaction event: %w", err)
	}

	if err := c.notificationUC.NotifyTransactionRecorded(ctx, event); err != nil {
		logger.Error("Failed to create transaction notification",
			logger.String("transaction_id", event.TransactionID.String()),
			logger.Err(err))
		return err
	}

	return nil
}
