package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/ledger/mocks"
)

func TestSettingsHandler_ListEventSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsUC := mocks.NewMockSettingsUC(ctrl)
	h := NewSettingsHandler(settingsUC)

	settingsUC.EXPECT().
		EventSettings().
		Return([]models.EventSetting{
			{EventType: constants.EventWedding, DefaultAmount: 100000, DisplayOrder: 1},
			{EventType: constants.EventFuneral, DefaultAmount: 100000, DisplayOrder: 2},
		})

	c, rec := newContactContext(t, http.MethodGet, "/api/v1/event-settings", "", uuid.New())

	require.NoError(t, h.ListEventSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    []models.EventSetting `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, constants.EventWedding, resp.Data[0].EventType)
	assert.Equal(t, int64(100000), resp.Data[0].DefaultAmount)
}
