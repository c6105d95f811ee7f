package schedules

import (
	"context"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/CHOIisaac/chalna-api/services/schedules ScheduleUC

// ScheduleUC defines the interface for schedule use cases
type ScheduleUC interface {
	CreateSchedule(ctx context.Context, userID uuid.UUID, input models.ScheduleInput) (*models.Schedule, error)
	GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*models.Schedule, error)
	ListSchedules(ctx context.Context, userID uuid.UUID, filter models.ScheduleFilter, page models.PageRequest) ([]models.Schedule, models.Pagination, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, input models.ScheduleInput) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error

	// CompleteSchedule moves the schedule to its terminal state and, when the
	// completion carries a contact and amount, records the linked ledger
	// transaction
	CompleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID, completion models.ScheduleCompletion) (*models.Schedule, error)
}
