package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// CreateSchedule validates the input and persists a new pending schedule
func (uc *ScheduleUC) CreateSchedule(ctx context.Context, userID uuid.UUID, input models.ScheduleInput) (*models.Schedule, error) {
	if err := validateScheduleInput(input); err != nil {
		return nil, err
	}
	if input.Status != "" && input.Status != constants.SchedulePending {
		return nil, apperrors.NewValidationError(map[string]string{
			"status": "new schedules start as pending",
		})
	}

	schedule := &models.Schedule{
		UserID:          userID,
		ContactID:       input.ContactID,
		Title:           strings.TrimSpace(input.Title),
		EventType:       input.EventType,
		EventTime:       input.EventTime,
		Location:        strings.TrimSpace(input.Location),
		EstimatedAmount: input.EstimatedAmount,
		Status:          constants.SchedulePending,
		Memo:            input.Memo,
	}

	if err := uc.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// GetSchedule retrieves a single schedule
func (uc *ScheduleUC) GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*models.Schedule, error) {
	return uc.scheduleRepo.GetSchedule(ctx, userID, scheduleID)
}

// ListSchedules returns one page of schedules with the paging envelope
func (uc *ScheduleUC) ListSchedules(ctx context.Context, userID uuid.UUID, filter models.ScheduleFilter, page models.PageRequest) ([]models.Schedule, models.Pagination, error) {
	page = page.Normalize()

	rows, total, err := uc.scheduleRepo.ListSchedules(ctx, userID, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return rows, models.NewPagination(page, total), nil
}

// UpdateSchedule applies the writable fields. A completed schedule is
// immutable, and completion itself only happens through CompleteSchedule.
func (uc *ScheduleUC) UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, input models.ScheduleInput) (*models.Schedule, error) {
	if err := validateScheduleInput(input); err != nil {
		return nil, err
	}

	schedule, err := uc.scheduleRepo.GetSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}

	if schedule.Status == constants.ScheduleCompleted {
		return nil, apperrors.NewValidationError(map[string]string{
			"status": "completed schedules cannot be modified",
		})
	}
	if input.Status != "" {
		if err := validateStatusTransition(schedule.Status, input.Status); err != nil {
			return nil, err
		}
		schedule.Status = input.Status
	}

	schedule.ContactID = input.ContactID
	schedule.Title = strings.TrimSpace(input.Title)
	schedule.EventType = input.EventType
	schedule.EventTime = input.EventTime
	schedule.Location = strings.TrimSpace(input.Location)
	schedule.EstimatedAmount = input.EstimatedAmount
	schedule.Memo = input.Memo

	if err := uc.scheduleRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// DeleteSchedule removes a schedule
func (uc *ScheduleUC) DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error {
	return uc.scheduleRepo.DeleteSchedule(ctx, userID, scheduleID)
}

// CompleteSchedule moves the schedule to completed and, when the completion
// carries a contact and amount, records the linked ledger transaction. The
// transaction id is written back onto the schedule row.
func (uc *ScheduleUC) CompleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID, completion models.ScheduleCompletion) (*models.Schedule, error) {
	schedule, err := uc.scheduleRepo.GetSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}

	if schedule.Status == constants.ScheduleCompleted {
		return nil, apperrors.NewValidationError(map[string]string{
			"status": "schedule is already completed",
		})
	}

	if completion.Amount != 0 {
		txn, err := uc.recordLinkedTransaction(ctx, userID, schedule, completion)
		if err != nil {
			return nil, err
		}
		schedule.TransactionID = &txn.ID
	}

	schedule.Status = constants.ScheduleCompleted
	if err := uc.scheduleRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (uc *ScheduleUC) recordLinkedTransaction(ctx context.Context, userID uuid.UUID, schedule *models.Schedule, completion models.ScheduleCompletion) (*models.Transaction, error) {
	contactID := schedule.ContactID
	if completion.ContactID != nil {
		contactID = completion.ContactID
	}
	if contactID == nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"contact_id": "a contact is required to record the transaction",
		})
	}

	direction := constants.DirectionGiven
	if completion.Direction != nil {
		direction = *completion.Direction
	}

	memo := completion.Memo
	if memo == "" {
		memo = schedule.Memo
	}

	return uc.txnUC.RecordTransaction(ctx, userID, models.TransactionInput{
		ContactID:  *contactID,
		ScheduleID: &schedule.ID,
		EventType:  schedule.EventType,
		Amount:     completion.Amount,
		Direction:  direction,
		EventDate:  schedule.EventTime,
		Memo:       memo,
	})
}

func validateStatusTransition(from, to string) error {
	if from == to {
		return nil
	}
	if from == constants.SchedulePending && to == constants.ScheduleInProgress {
		return nil
	}
	return apperrors.NewValidationError(map[string]string{
		"status": "invalid status transition",
	})
}

func validateScheduleInput(input models.ScheduleInput) error {
	fields := map[string]string{}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		fields["title"] = "title is required"
	} else if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		fields["title"] = "title is too long"
	}
	if !constants.ValidEventType(input.EventType) {
		fields["event_type"] = "unknown event type"
	}
	if input.EventTime.IsZero() {
		fields["event_time"] = "event time is required"
	}
	if input.EstimatedAmount < 0 {
		fields["estimated_amount"] = "estimated amount cannot be negative"
	}
	if input.Status != "" && input.Status != constants.SchedulePending &&
		input.Status != constants.ScheduleInProgress && input.Status != constants.ScheduleCompleted {
		fields["status"] = "unknown status"
	}
	if utf8.RuneCountInString(input.Memo) > constants.MaxMemoLength {
		fields["memo"] = "memo is too long"
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	return nil
}
