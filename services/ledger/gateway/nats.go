package gateway

import (
	"context"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// PublishTransactionRecorded publishes a committed ledger write
func (g *LedgerGW) PublishTransactionRecorded(ctx context.Context, event *models.TransactionEvent) error {
	return g.producer.Publish(constants.SubjectTransactionRecorded, event)
}

// PublishTransactionDeleted publishes a committed ledger deletion
func (g *LedgerGW) PublishTransactionDeleted(ctx context.Context, event *models.TransactionEvent) error {
	return g.producer.Publish(constants.SubjectTransactionDeleted, event)
}
