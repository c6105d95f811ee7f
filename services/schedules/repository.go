package schedules

import (
	"context"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/CHOIisaac/chalna-api/services/schedules ScheduleRepo

// ScheduleRepo defines the interface for schedule repository operations
type ScheduleRepo interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*models.Schedule, error)
	ListSchedules(ctx context.Context, userID uuid.UUID, filter models.ScheduleFilter, page models.PageRequest) ([]models.Schedule, int64, error)
	UpdateSchedule(ctx context.Context, schedule *models.Schedule) error
	DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error
}
