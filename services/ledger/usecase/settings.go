package usecase

import (
	"context"
	"fmt"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/ledger"
)

// SettingsUC holds the event type configuration loaded at startup. The
// snapshot is written once before the server starts accepting requests and
// only read afterwards, so no locking is needed.
type SettingsUC struct {
	settingsRepo ledger.EventSettingsRepo
	snapshot     []models.EventSetting
}

// NewSettingsUC creates a new settings usecase instance
func NewSettingsUC(settingsRepo ledger.EventSettingsRepo) *SettingsUC {
	return &SettingsUC{settingsRepo: settingsRepo}
}

// LoadEventSettings reads the seeded event type rows into the snapshot
func (u *SettingsUC) LoadEventSettings(ctx context.Context) error {
	settings, err := u.settingsRepo.ListEventSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load event settings: %w", err)
	}
	if len(settings) == 0 {
		return fmt.Errorf("event_settings table is empty, migrations did not run")
	}
	u.snapshot = settings
	return nil
}

// EventSettings returns the loaded snapshot in display order
func (u *SettingsUC) EventSettings() []models.EventSetting {
	return u.snapshot
}
