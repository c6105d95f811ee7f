package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/utils"
	"github.com/CHOIisaac/chalna-api/services/ledger"
)

// SettingsHandler serves the event type configuration snapshot
type SettingsHandler struct {
	settingsUC ledger.SettingsUC
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsUC ledger.SettingsUC) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// ListEventSettings returns every event type with its suggested default amount
func (h *SettingsHandler) ListEventSettings(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Event settings retrieved successfully", h.settingsUC.EventSettings())
}
