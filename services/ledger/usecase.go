package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/CHOIisaac/chalna-api/services/ledger ContactUC,TransactionUC,SettingsUC

// ContactUC defines the interface for contact use cases
type ContactUC interface {
	CreateContact(ctx context.Context, userID uuid.UUID, input models.ContactInput) (*models.Contact, error)
	GetContact(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error)
	ListContacts(ctx context.Context, userID uuid.UUID, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, models.Pagination, error)
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input models.ContactInput) (*models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
	RecalculateContact(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error)
}

// SettingsUC serves the event type configuration snapshot. LoadEventSettings
// runs once at startup; EventSettings is safe for concurrent reads afterwards.
type SettingsUC interface {
	LoadEventSettings(ctx context.Context) error
	EventSettings() []models.EventSetting
}

// TransactionUC defines the interface for ledger transaction use cases
type TransactionUC interface {
	RecordTransaction(ctx context.Context, userID uuid.UUID, input models.TransactionInput) (*models.Transaction, error)
	GetTransaction(ctx context.Context, userID, txnID uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, page models.PageRequest) ([]models.Transaction, models.Pagination, error)
	UpdateTransaction(ctx context.Context, userID, txnID uuid.UUID, update models.TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, txnID uuid.UUID) error
}
