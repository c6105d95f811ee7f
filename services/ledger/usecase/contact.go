package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/internal/utils"
)

// CreateContact validates the input and persists a new contact
func (uc *LedgerUC) CreateContact(ctx context.Context, userID uuid.UUID, input models.ContactInput) (*models.Contact, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		UserID:           userID,
		Name:             strings.TrimSpace(input.Name),
		Phone:            strings.TrimSpace(input.Phone),
		RelationshipType: input.RelationshipType,
		Memo:             input.Memo,
		IsFavorite:       input.IsFavorite,
	}

	if err := uc.contactRepo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// GetContact retrieves a single contact
func (uc *LedgerUC) GetContact(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error) {
	return uc.contactRepo.GetContact(ctx, userID, contactID)
}

// ListContacts returns one page of contacts with the paging envelope
func (uc *LedgerUC) ListContacts(ctx context.Context, userID uuid.UUID, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, models.Pagination, error) {
	page = page.Normalize()

	contacts, total, err := uc.contactRepo.ListContacts(ctx, userID, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return contacts, models.NewPagination(page, total), nil
}

// UpdateContact validates and applies the writable contact fields
func (uc *LedgerUC) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input models.ContactInput) (*models.Contact, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact, err := uc.contactRepo.GetContact(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	contact.Name = strings.TrimSpace(input.Name)
	contact.Phone = strings.TrimSpace(input.Phone)
	contact.RelationshipType = input.RelationshipType
	contact.Memo = input.Memo
	contact.IsFavorite = input.IsFavorite

	if err := uc.contactRepo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// DeleteContact removes a contact with no remaining transactions
func (uc *LedgerUC) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	return uc.contactRepo.DeleteContact(ctx, userID, contactID)
}

// RecalculateContact rebuilds the contact's cached aggregates from the
// transaction log
func (uc *LedgerUC) RecalculateContact(ctx context.Context, userID, contactID uuid.UUID) (*models.Contact, error) {
	return uc.contactRepo.RecalculateContactTotals(ctx, userID, contactID)
}

func validateContactInput(input models.ContactInput) error {
	fields := map[string]string{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fields["name"] = "name is required"
	} else if len([]rune(name)) > constants.MaxNameLength {
		fields["name"] = "name is too long"
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" && !utils.IsValidPhoneNumber(phone) {
		fields["phone"] = "invalid phone number"
	}
	if !constants.ValidRelationshipType(input.RelationshipType) {
		fields["relationship_type"] = "unknown relationship type"
	}
	if len([]rune(input.Memo)) > constants.MaxMemoLength {
		fields["memo"] = "memo is too long"
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	return nil
}
