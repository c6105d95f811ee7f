package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
)

// Contact represents a person the user exchanges ceremonial money with.
// TotalGiven, TotalReceived, Balance, EventCount and LastEventDate are a
// cache over the transaction log; they are updated in the same database
// transaction as every ledger write and can be rebuilt from the log.
type Contact struct {
	ID               uuid.UUID                  `json:"id" db:"id"`
	UserID           uuid.UUID                  `json:"user_id" db:"user_id"`
	Name             string                     `json:"name" db:"name"`
	Phone            string                     `json:"phone,omitempty" db:"phone"`
	RelationshipType constants.RelationshipType `json:"relationship_type" db:"relationship_type"`
	Memo             string                     `json:"memo,omitempty" db:"memo"`
	IsFavorite       bool                       `json:"is_favorite" db:"is_favorite"`
	TotalGiven       int64                      `json:"total_given" db:"total_given"`
	TotalReceived    int64                      `json:"total_received" db:"total_received"`
	Balance          int64                      `json:"balance" db:"balance"`
	EventCount       int                        `json:"event_count" db:"event_count"`
	LastEventDate    *time.Time                 `json:"last_event_date,omitempty" db:"last_event_date"`
	CreatedAt        time.Time                  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at" db:"updated_at"`
}

// ContactInput carries the writable contact fields for create and update
type ContactInput struct {
	Name             string                     `json:"name"`
	Phone            string                     `json:"phone"`
	RelationshipType constants.RelationshipType `json:"relationship_type"`
	Memo             string                     `json:"memo"`
	IsFavorite       bool                       `json:"is_favorite"`
}

// ContactFilter narrows contact list queries
type ContactFilter struct {
	RelationshipType constants.RelationshipType
	FavoritesOnly    bool
	Search           string
}
