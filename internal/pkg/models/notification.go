package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents an in-app notification. Reminder notifications are
// keyed by (schedule_id, offset_minutes) so an evaluator re-run can never
// emit the same reminder twice.
type Notification struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	ScheduleID    *uuid.UUID `json:"schedule_id,omitempty" db:"schedule_id"`
	OffsetMinutes *int       `json:"offset_minutes,omitempty" db:"offset_minutes"`
	Title         string     `json:"title" db:"title"`
	Message       string     `json:"message" db:"message"`
	IsRead        bool       `json:"is_read" db:"is_read"`
	ReadAt        *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// ReminderEvent is the payload published to NATS when a reminder fires
type ReminderEvent struct {
	NotificationID uuid.UUID `json:"notification_id"`
	ScheduleID     uuid.UUID `json:"schedule_id"`
	UserID         uuid.UUID `json:"user_id"`
	OffsetMinutes  int       `json:"offset_minutes"`
	Title          string    `json:"title"`
	EventTime      time.Time `json:"event_time"`
}
