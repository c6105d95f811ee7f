package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// CreateContact inserts a new contact with zeroed cached aggregates
func (r *LedgerRepo) CreateContact(ctx context.Context, contact *models.Contact) error {
	contact.ID = uuid.New()
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	query := `
		INSERT INTO contacts (id, user_id, name, phone, relationship_type, memo,
			is_favorite, total_given, total_received, balance, event_count,
			created_at, updated_at
		) VALUES (:id, :user_id, :name, :phone, :relationship_type, :memo,
			:is_favorite, 0, 0, 0, 0, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, contact); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

// GetContact retrieves a contact owned by the user
func (r *LedgerRepo) GetContact(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error) {
	query := `
		SELECT id, user_id, name, phone, relationship_type, memo, is_favorite,
			total_given, total_received, balance, event_count, last_event_date,
			created_at, updated_at
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, contactID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("contact")
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return &contact, nil
}

// ListContacts returns one page of the user's contacts plus the unpaged total
func (r *LedgerRepo) ListContacts(ctx context.Context, userID uuid.UUID, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}

	if filter.RelationshipType != "" {
		args = append(args, filter.RelationshipType)
		where += fmt.Sprintf(" AND relationship_type = $%d", len(args))
	}
	if filter.FavoritesOnly {
		where += " AND is_favorite = TRUE"
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM contacts " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	args = append(args, page.Limit, page.Offset())
	listQuery := fmt.Sprintf(`
		SELECT id, user_id, name, phone, relationship_type, memo, is_favorite,
			total_given, total_received, balance, event_count, last_event_date,
			created_at, updated_at
		FROM contacts
		%s
		ORDER BY name ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	contacts := []models.Contact{}
	if err := r.db.SelectContext(ctx, &contacts, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, total, nil
}

// UpdateContact updates the writable contact fields
func (r *LedgerRepo) UpdateContact(ctx context.Context, contact *models.Contact) error {
	contact.UpdatedAt = time.Now()

	query := `
		UPDATE contacts
		SET name = :name, phone = :phone, relationship_type = :relationship_type,
			memo = :memo, is_favorite = :is_favorite, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, contact)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("contact")
	}

	return nil
}

// DeleteContact removes a contact that has no remaining transactions
func (r *LedgerRepo) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var txnCount int
	err = tx.GetContext(ctx, &txnCount,
		"SELECT COUNT(*) FROM transactions WHERE contact_id = $1", contactID)
	if err != nil {
		return fmt.Errorf("failed to count contact transactions: %w", err)
	}
	if txnCount > 0 {
		return apperrors.NewValidationError(map[string]string{
			"contact_id": "contact still has transactions",
		})
	}

	result, err := tx.ExecContext(ctx,
		"DELETE FROM contacts WHERE id = $1 AND user_id = $2", contactID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("contact")
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RecalculateContactTotals rebuilds the cached aggregates from the
// transaction log. The contact row is locked so concurrent ledger writes
// serialize against the rebuild.
func (r *LedgerRepo) RecalculateContactTotals(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var contact models.Contact
	err = tx.GetContext(ctx, &contact, `
		SELECT id, user_id, name, phone, relationship_type, memo, is_favorite,
			total_given, total_received, balance, event_count, last_event_date,
			created_at, updated_at
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

	var totals struct {
		TotalGiven    int64      `db:"total_given"`
		TotalReceived int64      `db:"total_received"`
		EventCount    int        `db:"event_count"`
		LastEventDate *time.Time `db:"last_event_date"`
	}
	err = tx.GetContext(ctx, &totals, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE direction = 'given'), 0) AS total_given,
			COALESCE(SUM(amount) FILTER (WHERE direction = 'received'), 0) AS total_received,
			COUNT(*) AS event_count,
			MAX(event_date) AS last_event_date
		FROM transactions
		WHERE contact_id = $1
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce transaction log: %w", err)
	}

	contact.TotalGiven = totals.TotalGiven
	contact.TotalReceived = totals.TotalReceived
	contact.Balance = totals.TotalGiven - totals.TotalReceived
	contact.EventCount = totals.EventCount
	contact.LastEventDate = totals.LastEventDate
	contact.UpdatedAt = time.Now()

	_, err = tx.ExecContext(ctx, `
		UPDATE contacts
		SET total_given = $1, total_received = $2, balance = $3,
			event_count = $4, last_event_date = $5, updated_at = $6
		WHERE id = $7
	`, contact.TotalGiven, contact.TotalReceived, contact.Balance,
		contact.EventCount, contact.LastEventDate, contact.UpdatedAt, contact.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to write rebuilt aggregates: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &contact, nil
}
