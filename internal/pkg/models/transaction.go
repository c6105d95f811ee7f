package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
)

// Transaction represents a single ledger entry: ceremonial money given to or
// received from a contact. Rows are immutable after creation except for the
// status and memo fields; deletion reverses the cached contact aggregates.
type Transaction struct {
	ID         uuid.UUID           `json:"id" db:"id"`
	UserID     uuid.UUID           `json:"user_id" db:"user_id"`
	ContactID  uuid.UUID           `json:"contact_id" db:"contact_id"`
	ScheduleID *uuid.UUID          `json:"schedule_id,omitempty" db:"schedule_id"`
	EventType  constants.EventType `json:"event_type" db:"event_type"`
	Amount     int64               `json:"amount" db:"amount"`
	Direction  constants.Direction `json:"direction" db:"direction"`
	EventDate  time.Time           `json:"event_date" db:"event_date"`
	Memo       string              `json:"memo,omitempty" db:"memo"`
	Status     string              `json:"status" db:"status"`
	CreatedAt  time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at" db:"updated_at"`
}

// TransactionInput carries the fields needed to record a transaction
type TransactionInput struct {
	ContactID  uuid.UUID           `json:"contact_id"`
	ScheduleID *uuid.UUID          `json:"schedule_id,omitempty"`
	EventType  constants.EventType `json:"event_type"`
	Amount     int64               `json:"amount"`
	Direction  constants.Direction `json:"direction"`
	EventDate  time.Time           `json:"event_date"`
	Memo       string              `json:"memo"`
}

// TransactionUpdate carries the only mutable transaction fields
type TransactionUpdate struct {
	Memo   *string `json:"memo,omitempty"`
	Status *string `json:"status,omitempty"`
}

// TransactionFilter narrows transaction list queries
type TransactionFilter struct {
	ContactID *uuid.UUID
	Direction constants.Direction
	EventType constants.EventType
	From      *time.Time
	To        *time.Time
}

// TransactionEvent is the payload published to NATS after a ledger write
// commits.
type TransactionEvent struct {
	TransactionID uuid.UUID           `json:"transaction_id"`
	UserID        uuid.UUID           `json:"user_id"`
	ContactID     uuid.UUID           `json:"contact_id"`
	EventType     constants.EventType `json:"event_type"`
	Amount        int64               `json:"amount"`
	Direction     constants.Direction `json:"direction"`
	Timestamp     time.Time           `json:"timestamp"`
}
