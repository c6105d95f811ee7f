package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/middleware"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/internal/utils"
	"github.com/CHOIisaac/chalna-api/services/ledger"
)

// TransactionHandler handles HTTP requests for ledger transactions
type TransactionHandler struct {
	txnUC ledger.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txnUC ledger.TransactionUC) *TransactionHandler {
	return &TransactionHandler{txnUC: txnUC}
}

// ListTransactions handles paginated transaction listing with filters
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := models.TransactionFilter{
		Direction: constants.Direction(c.QueryParam("direction")),
		EventType: constants.EventType(c.QueryParam("event_type")),
	}
	if raw := c.QueryParam("contact_id"); raw != "" {
		contactID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid contact ID")
		}
		filter.ContactID = &contactID
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid from date")
		}
		filter.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid to date")
		}
		filter.To = &to
	}

	txns, pagination, err := h.txnUC.ListTransactions(c.Request().Context(), userID, filter, utils.ParsePageRequest(c))
	if err != nil {
		logger.Error("Failed to list transactions", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, "Transactions retrieved successfully", txns, pagination)
}

// GetTransaction handles single transaction retrieval
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.txnUC.GetTransaction(c.Request().Context(), userID, txnID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", txn)
}

// RecordTransaction handles ledger writes
func (h *TransactionHandler) RecordTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.TransactionInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.txnUC.RecordTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction recorded successfully", txn)
}

// UpdateTransaction handles memo/status updates
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var update models.TransactionUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.txnUC.UpdateTransaction(c.Request().Context(), userID, txnID, update)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", txn)
}

// DeleteTransaction handles ledger deletions
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	if err := h.txnUC.DeleteTransaction(c.Request().Context(), userID, txnID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction deleted successfully", nil)
}
