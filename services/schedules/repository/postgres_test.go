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

func setupScheduleRepoTest(t *testing.T) (*ScheduleRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &ScheduleRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func scheduleRowColumns() []string {
	return []string{"id", "user_id", "contact_id", "title", "event_type", "event_time",
		"location", "estimated_amount", "status", "transaction_id", "memo",
		"created_at", "updated_at"}
}

func TestCreateSchedule_Insert(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	schedule := &models.Schedule{
		UserID:    uuid.New(),
		Title:     "Minjun's wedding",
		EventType: constants.EventWedding,
		EventTime: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		Status:    constants.SchedulePending,
	}

	mock.ExpectExec("INSERT INTO schedules").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateSchedule(context.Background(), schedule)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, schedule.ID)
	assert.False(t, schedule.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSchedule_NotFound(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	scheduleID := uuid.New()

	mock.ExpectQuery("SELECT(.|\n)+FROM schedules").
		WithArgs(scheduleID, userID).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns()))

	_, err := repo.GetSchedule(context.Background(), userID, scheduleID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestListSchedules_Filters(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schedules WHERE user_id = \\$1 AND status = \\$2 AND event_time >= NOW\\(\\)").
		WithArgs(userID, constants.SchedulePending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY event_time ASC").
		WithArgs(userID, constants.SchedulePending, 20, 0).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns()).
			AddRow(uuid.New(), userID, nil, "Minjun's wedding", "wedding",
				now.Add(48*time.Hour), "Seoul", int64(100000), "pending", nil, "",
				now, now))

	filter := models.ScheduleFilter{Status: constants.SchedulePending, UpcomingOnly: true}
	rows, total, err := repo.ListSchedules(context.Background(), userID, filter,
		models.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Minjun's wedding", rows[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSchedule_NotFound(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE schedules").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSchedule(context.Background(), &models.Schedule{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: constants.ScheduleCompleted,
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDeleteSchedule(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	scheduleID := uuid.New()

	mock.ExpectExec("DELETE FROM schedules").
		WithArgs(scheduleID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteSchedule(context.Background(), userID, scheduleID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
