package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/stats/mocks"
)

func newStatsContext(t *testing.T, target string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestStatsHandler_Dashboard(t *testing.T) {
	t.Run("success with explicit period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := uuid.New()
		statsUC := mocks.NewMockStatsUC(ctrl)
		h := NewStatsHandler(statsUC)

		statsUC.EXPECT().
			Dashboard(gomock.Any(), userID, constants.PeriodLastYear).
			Return(&models.DashboardStats{Period: "last_year", TotalGiven: 500000}, nil)

		c, rec := newStatsContext(t, "/api/v1/stats/dashboard?period=last_year", userID)
		require.NoError(t, h.Dashboard(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Period     string `json:"period"`
				TotalGiven int64  `json:"total_given"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "last_year", resp.Data.Period)
		assert.Equal(t, int64(500000), resp.Data.TotalGiven)
	})

	t.Run("missing period defaults to this_month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := uuid.New()
		statsUC := mocks.NewMockStatsUC(ctrl)
		h := NewStatsHandler(statsUC)

		statsUC.EXPECT().
			Dashboard(gomock.Any(), userID, constants.PeriodThisMonth).
			Return(&models.DashboardStats{Period: "this_month"}, nil)

		c, rec := newStatsContext(t, "/api/v1/stats/dashboard", userID)
		require.NoError(t, h.Dashboard(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown period maps to validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := uuid.New()
		statsUC := mocks.NewMockStatsUC(ctrl)
		h := NewStatsHandler(statsUC)

		statsUC.EXPECT().
			Dashboard(gomock.Any(), userID, constants.StatsPeriod("this_week")).
			Return(nil, apperrors.NewValidationError(map[string]string{"period": "unknown period"}))

		c, rec := newStatsContext(t, "/api/v1/stats/dashboard?period=this_week", userID)
		require.NoError(t, h.Dashboard(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})

	t.Run("missing user is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		statsUC := mocks.NewMockStatsUC(ctrl)
		h := NewStatsHandler(statsUC)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/dashboard", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Dashboard(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestStatsHandler_Monthly(t *testing.T) {
	t.Run("explicit year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := uuid.New()
		statsUC := mocks.NewMockStatsUC(ctrl)
		h := NewStatsHandler(statsUC)

		statsUC.EXPECT().
			Monthly(gomock.Any(), userID, 2025).
			Return(&models.MonthlyBreakdown{Year: 2025, Months: make([]models.MonthlyStat, 12)}, nil)

		c, rec := newStatsContext(t, "/api/v1/stats/monthly?year=2025", userID)
		require.NoError(t, h.Monthly(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing year defaults to the current year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := uuid.New()
		statsUC := mocks.NewMockStatsUC(ctrl)
		h := NewStatsHandler(statsUC)

		statsUC.EXPECT().
			Monthly(gomock.Any(), userID, time.Now().Year()).
			Return(&models.MonthlyBreakdown{}, nil)

		c, rec := newStatsContext(t, "/api/v1/stats/monthly", userID)
		require.NoError(t, h.Monthly(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non numeric year is a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := uuid.New()
		statsUC := mocks.NewMockStatsUC(ctrl)
		h := NewStatsHandler(statsUC)

		c, rec := newStatsContext(t, "/api/v1/stats/monthly?year=twenty", userID)
		require.NoError(t, h.Monthly(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatsHandler_Grouped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	statsUC := mocks.NewMockStatsUC(ctrl)
	h := NewStatsHandler(statsUC)

	grouped := &models.GroupedStats{
		Period:     "this_year",
		GrandTotal: 700000,
		Groups: []models.GroupStat{
			{Key: "funeral", Count: 1, TotalAmount: 300000},
		},
	}

	statsUC.EXPECT().
		ByEventType(gomock.Any(), userID, constants.PeriodThisYear).
		Return(grouped, nil)

	c, rec := newStatsContext(t, "/api/v1/stats/event-types?period=this_year", userID)
	require.NoError(t, h.ByEventType(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	statsUC.EXPECT().
		ByRelationship(gomock.Any(), userID, constants.PeriodThisYear).
		Return(grouped, nil)

	c, rec = newStatsContext(t, "/api/v1/stats/relationships?period=this_year", userID)
	require.NoError(t, h.ByRelationship(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
