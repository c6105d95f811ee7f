package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/middleware"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/internal/utils"
	"github.com/CHOIisaac/chalna-api/services/ledger"
)

// ContactHandler handles HTTP requests for contact operations
type ContactHandler struct {
	contactUC ledger.ContactUC
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactUC ledger.ContactUC) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

// ListContacts handles paginated contact listing with filters
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := models.ContactFilter{
		RelationshipType: constants.RelationshipType(c.QueryParam("relationship_type")),
		FavoritesOnly:    c.QueryParam("favorites") == "true",
		Search:           c.QueryParam("search"),
	}

	contacts, pagination, err := h.contactUC.ListContacts(c.Request().Context(), userID, filter, utils.ParsePageRequest(c))
	if err != nil {
		logger.Error("Failed to list contacts", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, "Contacts retrieved successfully", contacts, pagination)
}

// GetContact handles single contact retrieval
func (h *ContactHandler) GetContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	contact, err := h.contactUC.GetContact(c.Request().Context(), userID, contactID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact retrieved successfully", contact)
}

// CreateContact handles contact creation
func (h *ContactHandler) CreateContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.ContactInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	contact, err := h.contactUC.CreateContact(c.Request().Context(), userID, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Contact created successfully", contact)
}

// UpdateContact handles contact updates
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	var input models.ContactInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), userID, contactID, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact updated successfully", contact)
}

// DeleteContact handles contact deletion
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), userID, contactID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact deleted successfully", nil)
}

// RecalculateContact rebuilds the contact's cached aggregates from the
// transaction log
func (h *ContactHandler) RecalculateContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	contact, err := h.contactUC.RecalculateContact(c.Request().Context(), userID, contactID)
	if err != nil {
		logger.Error("Failed to recalculate contact totals",
			logger.String("contact_id", contactID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact totals recalculated", contact)
}
