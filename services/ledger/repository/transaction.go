package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// CreateTransaction inserts a ledger row and applies its delta to the owning
// contact's cached aggregates. Both writes share one database transaction;
// the contact row is locked first so concurrent writers serialize.
func (r *LedgerRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.ID = uuid.New()
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	if txn.Status == "" {
		txn.Status = constants.TransactionConfirmed
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	contact, err := lockContact(ctx, tx, txn.UserID, txn.ContactID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (id, user_id, contact_id, schedule_id, event_type,
			amount, direction, event_date, memo, status, created_at, updated_at
		) VALUES (:id, :user_id, :contact_id, :schedule_id, :event_type,
			:amount, :direction, :event_date, :memo, :status, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err = applyAggregateDelta(ctx, tx, contact, txn, 1); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a ledger row owned by the user
func (r *LedgerRepo) GetTransaction(ctx context.Context, userID, txnID uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, contact_id, schedule_id, event_type, amount,
			direction, event_date, memo, status, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, txnID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction")
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactions returns one page of ledger rows, newest event first
func (r *LedgerRepo) ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, page models.PageRequest) ([]models.Transaction, int64, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}

	if filter.ContactID != nil {
		args = append(args, *filter.ContactID)
		where += fmt.Sprintf(" AND contact_id = $%d", len(args))
	}
	if filter.Direction != "" {
		args = append(args, filter.Direction)
		where += fmt.Sprintf(" AND direction = $%d", len(args))
	}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		where += fmt.Sprintf(" AND event_type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND event_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND event_date <= $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM transactions " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	args = append(args, page.Limit, page.Offset())
	listQuery := fmt.Sprintf(`
		SELECT id, user_id, contact_id, schedule_id, event_type, amount,
			direction, event_date, memo, status, created_at, updated_at
		FROM transactions
		%s
		ORDER BY event_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	txns := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, total, nil
}

// UpdateTransaction updates the mutable fields (memo, status) and returns
// the updated row
func (r *LedgerRepo) UpdateTransaction(ctx context.Context, userID, txnID uuid.UUID, update models.TransactionUpdate) (*models.Transaction, error) {
	set := "updated_at = $1"
	args := []interface{}{time.Now()}

	if update.Memo != nil {
		args = append(args, *update.Memo)
		set += fmt.Sprintf(", memo = $%d", len(args))
	}
	if update.Status != nil {
		args = append(args, *update.Status)
		set += fmt.Sprintf(", status = $%d", len(args))
	}

	args = append(args, txnID, userID)
	query := fmt.Sprintf(`
		UPDATE transactions
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING id, user_id, contact_id, schedule_id, event_type, amount,
			direction, event_date, memo, status, created_at, updated_at
	`, set, len(args)-1, len(args))

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction")
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &txn, nil
}

// DeleteTransaction removes a ledger row and reverses its aggregate effect
// on the owning contact, in one database transaction. The deleted row is
// returned so the caller can publish the deletion event.
func (r *LedgerRepo) DeleteTransaction(ctx context.Context, userID, txnID uuid.UUID) (*models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var txn models.Transaction
	err = tx.GetContext(ctx, &txn, `
		SELECT id, user_id, contact_id, schedule_id, event_type, amount,
			direction, event_date, memo, status, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`, txnID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction")
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	contact, err := lockContact(ctx, tx, txn.UserID, txn.ContactID)
	if err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM transactions WHERE id = $1", txn.ID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err = applyAggregateDelta(ctx, tx, contact, &txn, -1); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &txn, nil
}

// lockContact reads the contact's aggregates under FOR UPDATE
func lockContact(ctx context.Context, tx *sqlx.Tx, userID, contactID uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := tx.GetContext(ctx, &contact, `
		SELECT id, user_id, total_given, total_received, balance, event_count, last_event_date
		FROM contacts
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, contactID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("contact")
		}
		return nil, fmt.Errorf("failed to lock contact: %w", err)
	}

	return &contact, nil
}

// applyAggregateDelta applies the transaction's effect (sign +1) or its
// reversal (sign -1) to the locked contact's cached aggregates. Reversals
// recompute last_event_date from the remaining log since the max is not
// invertible from the cache alone.
func applyAggregateDelta(ctx context.Context, tx *sqlx.Tx, contact *models.Contact, txn *models.Transaction, sign int64) error {
	given := contact.TotalGiven
	received := contact.TotalReceived
	if txn.Direction == constants.DirectionGiven {
		given += sign * txn.Amount
	} else {
		received += sign * txn.Amount
	}
	eventCount := contact.EventCount + int(sign)

	var lastEventDate *time.Time
	if sign > 0 {
		d := txn.EventDate
		if contact.LastEventDate != nil && contact.LastEventDate.After(d) {
			d = *contact.LastEventDate
		}
		lastEventDate = &d
	} else {
		err := tx.GetContext(ctx, &lastEventDate,
			"SELECT MAX(event_date) FROM transactions WHERE contact_id = $1", contact.ID)
		if err != nil {
			return fmt.Errorf("failed to recompute last event date: %w", err)
		}
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE contacts
		SET total_given = $1, total_received = $2, balance = $3,
			event_count = $4, last_event_date = $5, updated_at = $6
		WHERE id = $7
	`, given, received, given-received, eventCount, lastEventDate, time.Now(), contact.ID)
	if err != nil {
		return fmt.Errorf("failed to update contact aggregates: %w", err)
	}

	return nil
}
