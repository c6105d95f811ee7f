package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/CHOIisaac/chalna-api/services/ledger ContactRepo,TransactionRepo,EventSettingsRepo

// ContactRepo defines the interface for contact repository operations
type ContactRepo interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContact(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error)
	ListContacts(ctx context.Context, userID uuid.UUID, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error)
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error

	// RecalculateContactTotals rebuilds the cached aggregates from the
	// transaction log in a single database transaction
	RecalculateContactTotals(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error)
}

// EventSettingsRepo reads the seeded event type configuration
type EventSettingsRepo interface {
	ListEventSettings(ctx context.Context) ([]models.EventSetting, error)
}

// TransactionRepo defines the interface for ledger transaction operations.
// Create and Delete update the owning contact's cached aggregates in the
// same database transaction as the row write.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransaction(ctx context.Context, userID, txnID uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, page models.PageRequest) ([]models.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, userID, txnID uuid.UUID, update models.TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, txnID uuid.UUID) (*models.Transaction, error)
}
