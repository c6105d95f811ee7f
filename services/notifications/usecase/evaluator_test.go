package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/notifications/mocks"
)

func setupNotificationUC(t *testing.T) (*NotificationUC, *mocks.MockNotificationRepo, *mocks.MockNotificationGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepo(ctrl)
	gw := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(repo, gw, &models.Config{})
	return uc, repo, gw, ctrl
}

func pendingSchedule(userID uuid.UUID, eventTime time.Time) models.Schedule {
	return models.Schedule{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Minjun's wedding",
		EventType: constants.EventWedding,
		EventTime: eventTime,
		Status:    constants.SchedulePending,
	}
}

func TestEvaluateReminders(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("fires every offset already reached", func(t *testing.T) {
		uc, repo, gw, ctrl := setupNotificationUC(t)
		defer ctrl.Finish()

		// 2 hours ahead: the 3-day, 1-day and 3-hour offsets have all passed
		schedule := pendingSchedule(userID, now.Add(2*time.Hour))

		repo.EXPECT().
			PendingSchedulesDue(gomock.Any(), now, now.Add(4320*time.Minute)).
			Return([]models.Schedule{schedule}, nil)

		var offsets []int
		repo.EXPECT().
			InsertReminder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *models.Notification) (bool, error) {
				require.NotNil(t, n.ScheduleID)
				assert.Equal(t, schedule.ID, *n.ScheduleID)
				require.NotNil(t, n.OffsetMinutes)
				offsets = append(offsets, *n.OffsetMinutes)
				return true, nil
			}).
			Times(3)
		gw.EXPECT().PublishReminderDue(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		fired, err := uc.EvaluateReminders(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 3, fired)
		assert.ElementsMatch(t, []int{4320, 1440, 180}, offsets)
	})

	t.Run("only the reached offsets fire", func(t *testing.T) {
		uc, repo, gw, ctrl := setupNotificationUC(t)
		defer ctrl.Finish()

		// 2 days ahead: only the 3-day offset has passed
		schedule := pendingSchedule(userID, now.Add(48*time.Hour))

		repo.EXPECT().
			PendingSchedulesDue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]models.Schedule{schedule}, nil)
		repo.EXPECT().
			InsertReminder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *models.Notification) (bool, error) {
				assert.Equal(t, 4320, *n.OffsetMinutes)
				return true, nil
			})
		gw.EXPECT().PublishReminderDue(gomock.Any(), gomock.Any()).Return(nil)

		fired, err := uc.EvaluateReminders(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, fired)
	})

	t.Run("re-run inserts nothing and publishes nothing", func(t *testing.T) {
		uc, repo, _, ctrl := setupNotificationUC(t)
		defer ctrl.Finish()

		schedule := pendingSchedule(userID, now.Add(2*time.Hour))

		repo.EXPECT().
			PendingSchedulesDue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]models.Schedule{schedule}, nil)
		// Conflicting rows already exist from the previous run
		repo.EXPECT().
			InsertReminder(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(3)

		fired, err := uc.EvaluateReminders(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 0, fired)
	})

	t.Run("past events never fire", func(t *testing.T) {
		uc, repo, _, ctrl := setupNotificationUC(t)
		defer ctrl.Finish()

		schedule := pendingSchedule(userID, now.Add(-time.Hour))

		repo.EXPECT().
			PendingSchedulesDue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]models.Schedule{schedule}, nil)

		fired, err := uc.EvaluateReminders(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 0, fired)
	})

	t.Run("publish failure does not fail the pass", func(t *testing.T) {
		uc, repo, gw, ctrl := setupNotificationUC(t)
		defer ctrl.Finish()

		schedule := pendingSchedule(userID, now.Add(2*time.Hour))

		repo.EXPECT().
			PendingSchedulesDue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]models.Schedule{schedule}, nil)
		repo.EXPECT().InsertReminder(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
		gw.EXPECT().
			PublishReminderDue(gomock.Any(), gomock.Any()).
			Return(errors.New("nats down")).
			Times(3)

		fired, err := uc.EvaluateReminders(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 3, fired)
	})

	t.Run("configured offsets override the defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepo(ctrl)
		gw := mocks.NewMockNotificationGW(ctrl)
		uc := NewNotificationUC(repo, gw, &models.Config{
			Reminder: models.ReminderConfig{OffsetsMinutes: []int{60}},
		})

		schedule := pendingSchedule(userID, now.Add(30*time.Minute))

		repo.EXPECT().
			PendingSchedulesDue(gomock.Any(), now, now.Add(60*time.Minute)).
			Return([]models.Schedule{schedule}, nil)
		repo.EXPECT().
			InsertReminder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *models.Notification) (bool, error) {
				assert.Equal(t, 60, *n.OffsetMinutes)
				return true, nil
			})
		gw.EXPECT().PublishReminderDue(gomock.Any(), gomock.Any()).Return(nil)

		fired, err := uc.EvaluateReminders(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, fired)
	})

	t.Run("repository failure aborts the pass", func(t *testing.T) {
		uc, repo, _, ctrl := setupNotificationUC(t)
		defer ctrl.Finish()

		repo.EXPECT().
			PendingSchedulesDue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		_, err := uc.EvaluateReminders(context.Background(), now)
		assert.Error(t, err)
	})
}

func TestHumanizeOffset(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{4320, "3 days"},
		{1440, "1 day"},
		{180, "3 hours"},
		{60, "1 hour"},
		{45, "45 minutes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeOffset(tt.minutes))
	}
}

func TestRunReminderEvaluator_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockNotificationRepo(ctrl)
	gw := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(repo, gw, &models.Config{
		Reminder: models.ReminderConfig{IntervalSeconds: 3600},
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		uc.RunReminderEvaluator(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("evaluator did not stop on context cancellation")
	}
}
