package models

import "github.com/CHOIisaac/chalna-api/internal/pkg/constants"

// EventSetting is one configured event type with its suggested default
// amount. The full set is loaded from the event_settings table at startup
// and served to clients as an immutable snapshot.
type EventSetting struct {
	EventType     constants.EventType `json:"event_type" db:"event_type"`
	DefaultAmount int64               `json:"default_amount" db:"default_amount"`
	DisplayOrder  int                 `json:"display_order" db:"display_order"`
}
