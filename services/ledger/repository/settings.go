package repository

import (
	"context"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

const eventSettingsQuery = `
	SELECT event_type, default_amount, display_order
	FROM event_settings
	ORDER BY display_order ASC`

// ListEventSettings returns every configured event type in display order
func (r *LedgerRepo) ListEventSettings(ctx context.Context) ([]models.EventSetting, error) {
	settings := []models.EventSetting{}
	if err := r.db.SelectContext(ctx, &settings, eventSettingsQuery); err != nil {
		return nil, err
	}
	return settings, nil
}
