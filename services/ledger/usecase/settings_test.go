package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/ledger/mocks"
)

func TestLoadEventSettings(t *testing.T) {
	seeded := []models.EventSetting{
		{EventType: constants.EventWedding, DefaultAmount: 100000, DisplayOrder: 1},
		{EventType: constants.EventFuneral, DefaultAmount: 100000, DisplayOrder: 2},
		{EventType: constants.EventBirthday, DefaultAmount: 30000, DisplayOrder: 4},
	}

	t.Run("Success captures snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settingsRepo := mocks.NewMockEventSettingsRepo(ctrl)
		settingsRepo.EXPECT().
			ListEventSettings(gomock.Any()).
			Return(seeded, nil)

		uc := NewSettingsUC(settingsRepo)
		err := uc.LoadEventSettings(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, seeded, uc.EventSettings())
	})

	t.Run("Empty table is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settingsRepo := mocks.NewMockEventSettingsRepo(ctrl)
		settingsRepo.EXPECT().
			ListEventSettings(gomock.Any()).
			Return([]models.EventSetting{}, nil)

		uc := NewSettingsUC(settingsRepo)
		err := uc.LoadEventSettings(context.Background())
		assert.Error(t, err)
		assert.Empty(t, uc.EventSettings())
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settingsRepo := mocks.NewMockEventSettingsRepo(ctrl)
		settingsRepo.EXPECT().
			ListEventSettings(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		uc := NewSettingsUC(settingsRepo)
		err := uc.LoadEventSettings(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load event settings")
	})
}
