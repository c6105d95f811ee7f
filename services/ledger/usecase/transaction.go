package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// RecordTransaction validates the input, persists the ledger row together
// with the contact aggregate update, then fans out the post-commit side
// effects. Gateway failures are logged only: the write has committed.
func (uc *LedgerUC) RecordTransaction(ctx context.Context, userID uuid.UUID, input models.TransactionInput) (*models.Transaction, error) {
	if err := uc.validateTransactionInput(input); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		UserID:     userID,
		ContactID:  input.ContactID,
		ScheduleID: input.ScheduleID,
		EventType:  input.EventType,
		Amount:     input.Amount,
		Direction:  input.Direction,
		EventDate:  input.EventDate,
		Memo:       input.Memo,
		Status:     constants.TransactionConfirmed,
	}

	if err := uc.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	uc.fanOut(ctx, txn, true)

	return txn, nil
}

// GetTransaction retrieves a single ledger row
func (uc *LedgerUC) GetTransaction(ctx context.Context, userID, txnID uuid.UUID) (*models.Transaction, error) {
	return uc.txnRepo.GetTransaction(ctx, userID, txnID)
}

// ListTransactions returns one page of ledger rows with the paging envelope
func (uc *LedgerUC) ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, page models.PageRequest) ([]models.Transaction, models.Pagination, error) {
	page = page.Normalize()

	txns, total, err := uc.txnRepo.ListTransactions(ctx, userID, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return txns, models.NewPagination(page, total), nil
}

// UpdateTransaction applies the mutable fields (memo, status)
func (uc *LedgerUC) UpdateTransaction(ctx context.Context, userID, txnID uuid.UUID, update models.TransactionUpdate) (*models.Transaction, error) {
	if update.Status != nil {
		switch *update.Status {
		case constants.TransactionConfirmed, constants.TransactionCanceled:
		default:
			return nil, apperrors.NewValidationError(map[string]string{
				"status": "unknown status",
			})
		}
	}
	if update.Memo != nil && len([]rune(*update.Memo)) > constants.MaxMemoLength {
		return nil, apperrors.NewValidationError(map[string]string{
			"memo": "memo is too long",
		})
	}

	return uc.txnRepo.UpdateTransaction(ctx, userID, txnID, update)
}

// DeleteTransaction removes a ledger row, reversing its aggregate effect
func (uc *LedgerUC) DeleteTransaction(ctx context.Context, userID, txnID uuid.UUID) error {
	txn, err := uc.txnRepo.DeleteTransaction(ctx, userID, txnID)
	if err != nil {
		return err
	}

	uc.fanOut(ctx, txn, false)

	return nil
}

// fanOut publishes the ledger event and drops the cached dashboard stats
func (uc *LedgerUC) fanOut(ctx context.Context, txn *models.Transaction, recorded bool) {
	event := &models.TransactionEvent{
		TransactionID: txn.ID,
		UserID:        txn.UserID,
		ContactID:     txn.ContactID,
		EventType:     txn.EventType,
		Amount:        txn.Amount,
		Direction:     txn.Direction,
		Timestamp:     time.Now(),
	}

	var err error
	if recorded {
		err = uc.ledgerGW.PublishTransactionRecorded(ctx, event)
	} else {
		err = uc.ledgerGW.PublishTransactionDeleted(ctx, event)
	}
	if err != nil {
		logger.Warn("Failed to publish ledger event",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
	}

	if err := uc.ledgerGW.InvalidateDashboardStats(ctx, txn.UserID); err != nil {
		logger.Warn("Failed to invalidate dashboard stats cache",
			logger.String("user_id", txn.UserID.String()),
			logger.Err(err))
	}
}

func (uc *LedgerUC) validateTransactionInput(input models.TransactionInput) error {
	fields := map[string]string{}

	minAmount := int64(constants.MinTransactionAmount)
	maxAmount := int64(constants.MaxTransactionAmount)
	if uc.cfg != nil && uc.cfg.Ledger.MinAmount > 0 {
		minAmount = uc.cfg.Ledger.MinAmount
	}
	if uc.cfg != nil && uc.cfg.Ledger.MaxAmount > 0 {
		maxAmount = uc.cfg.Ledger.MaxAmount
	}

	if input.ContactID == uuid.Nil {
		fields["contact_id"] = "contact_id is required"
	}
	if input.Amount < minAmount || input.Amount > maxAmount {
		fields["amount"] = "amount is out of bounds"
	}
	if !constants.ValidEventType(input.EventType) {
		fields["event_type"] = "unknown event type"
	}
	if !constants.ValidDirection(input.Direction) {
		fields["direction"] = "direction must be given or received"
	}
	if input.EventDate.IsZero() {
		fields["event_date"] = "event_date is required"
	}
	if len([]rune(input.Memo)) > constants.MaxMemoLength {
		fields["memo"] = "memo is too long"
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	return nil
}
