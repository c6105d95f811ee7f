package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/CHOIisaac/chalna-api/services/ledger LedgerGW

// LedgerGW defines the outbound gateway for ledger side effects. Failures
// here are logged by the usecase, never surfaced to the caller: the ledger
// write has already committed.
type LedgerGW interface {
	// NATS Gateway
	PublishTransactionRecorded(ctx context.Context, event *models.TransactionEvent) error
	PublishTransactionDeleted(ctx context.Context, event *models.TransactionEvent) error

	// Redis Gateway
	InvalidateDashboardStats(ctx context.Context, userID uuid.UUID) error
}
