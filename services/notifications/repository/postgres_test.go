package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

func setupNotificationRepoTest(t *testing.T) (*NotificationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &NotificationRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestInsertReminder_Idempotency(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	scheduleID := uuid.New()
	offset := 1440
	notification := func() *models.Notification {
		return &models.Notification{
			UserID:        uuid.New(),
			ScheduleID:    &scheduleID,
			OffsetMinutes: &offset,
			Title:         "Upcoming event",
		}
	}

	// First run inserts the row
	mock.ExpectExec("ON CONFLICT \\(schedule_id, offset_minutes\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	inserted, err := repo.InsertReminder(context.Background(), notification())
	require.NoError(t, err)
	assert.True(t, inserted)

	// Re-run conflicts and inserts nothing
	mock.ExpectExec("ON CONFLICT \\(schedule_id, offset_minutes\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 0))
	inserted, err = repo.InsertReminder(context.Background(), notification())
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_SetOnce(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	notificationID := uuid.New()

	// COALESCE keeps the original read_at on repeat calls
	mock.ExpectExec("SET is_read = TRUE, read_at = COALESCE\\(read_at, \\$1\\)").
		WithArgs(sqlmock.AnyArg(), notificationID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkRead(context.Background(), userID, notificationID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_NotFound(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE notifications").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestMarkAllRead(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectExec("WHERE user_id = \\$2 AND is_read = FALSE").
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 7))

	updated, err := repo.MarkAllRead(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated)
}

func TestListNotifications_UnreadFilter(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notifications WHERE user_id = \\$1 AND is_read = FALSE").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(userID, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "schedule_id", "offset_minutes",
			"title", "message", "is_read", "read_at", "created_at"}).
			AddRow(uuid.New(), userID, nil, nil, "Transaction recorded", "wedding of 100000 KRW given was recorded",
				false, nil, now))

	rows, total, err := repo.ListNotifications(context.Background(), userID, true, models.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingSchedulesDue_Window(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	from := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	to := from.Add(72 * time.Hour)

	mock.ExpectQuery("WHERE status = \\$1 AND event_time > \\$2 AND event_time <= \\$3").
		WithArgs(constants.SchedulePending, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "contact_id", "title", "event_type",
			"event_time", "location", "estimated_amount", "status", "transaction_id", "memo",
			"created_at", "updated_at"}).
			AddRow(uuid.New(), uuid.New(), nil, "Minjun's wedding", "wedding",
				from.Add(24*time.Hour), "", int64(0), "pending", nil, "", from, from))

	rows, err := repo.PendingSchedulesDue(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Minjun's wedding", rows[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
