package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
)

// Schedule represents an upcoming ceremonial event the user plans to attend
type Schedule struct {
	ID              uuid.UUID           `json:"id" db:"id"`
	UserID          uuid.UUID           `json:"user_id" db:"user_id"`
	ContactID       *uuid.UUID          `json:"contact_id,omitempty" db:"contact_id"`
	Title           string              `json:"title" db:"title"`
	EventType       constants.EventType `json:"event_type" db:"event_type"`
	EventTime       time.Time           `json:"event_time" db:"event_time"`
	Location        string              `json:"location,omitempty" db:"location"`
	EstimatedAmount int64               `json:"estimated_amount" db:"estimated_amount"`
	Status          string              `json:"status" db:"status"`
	TransactionID   *uuid.UUID          `json:"transaction_id,omitempty" db:"transaction_id"`
	Memo            string              `json:"memo,omitempty" db:"memo"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" db:"updated_at"`
}

// ScheduleInput carries the writable schedule fields
type ScheduleInput struct {
	ContactID       *uuid.UUID          `json:"contact_id,omitempty"`
	Title           string              `json:"title"`
	EventType       constants.EventType `json:"event_type"`
	EventTime       time.Time           `json:"event_time"`
	Location        string              `json:"location"`
	EstimatedAmount int64               `json:"estimated_amount"`
	Status          string              `json:"status,omitempty"`
	Memo            string              `json:"memo"`
}

// ScheduleCompletion carries the optional ledger linkage recorded when a
// schedule reaches its terminal state.
type ScheduleCompletion struct {
	ContactID *uuid.UUID           `json:"contact_id,omitempty"`
	Amount    int64                `json:"amount"`
	Direction *constants.Direction `json:"direction,omitempty"`
	Memo      string               `json:"memo"`
}

// ScheduleFilter narrows schedule list queries
type ScheduleFilter struct {
	Status    string
	EventType constants.EventType
	UpcomingOnly bool
	TodayOnly    bool
}
