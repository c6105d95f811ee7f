package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	client        *Client
	subscriptions []*nats.Subscription
}

// NewConsumer creates a new NATS consumer on top of an existing client
func NewConsumer(client *Client) *Consumer {
	return &Consumer{client: client}
}

// Subscribe subscribes to a subject, optionally in a queue group so that
// multiple instances share the work
func (c *Consumer) Subscribe(subject, queueGroup string, handler MessageHandler) error {
	msgHandler := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var sub *nats.Subscription
	var err error
	if queueGroup != "" {
		sub, err = c.client.GetConn().QueueSubscribe(subject, queueGroup, msgHandler)
	} else {
		sub, err = c.client.GetConn().Subscribe(subject, msgHandler)
	}
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	c.subscriptions = append(c.subscriptions, sub)
	return nil
}

// Stop drains all subscriptions
func (c *Consumer) Stop() {
	for _, sub := range c.subscriptions {
		if err := sub.Drain(); err != nil {
			logger.Warn("Failed to drain subscription", logger.Err(err))
		}
	}
	c.subscriptions = nil
}
