package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/ledger/mocks"
)

func setupLedgerUC(t *testing.T) (*LedgerUC, *mocks.MockContactRepo, *mocks.MockTransactionRepo, *mocks.MockLedgerGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	contactRepo := mocks.NewMockContactRepo(ctrl)
	txnRepo := mocks.NewMockTransactionRepo(ctrl)
	gw := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(contactRepo, txnRepo, gw, &models.Config{})
	return uc, contactRepo, txnRepo, gw, ctrl
}

func validTransactionInput(contactID uuid.UUID) models.TransactionInput {
	return models.TransactionInput{
		ContactID: contactID,
		EventType: constants.EventWedding,
		Amount:    100000,
		Direction: constants.DirectionGiven,
		EventDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordTransaction(t *testing.T) {
	userID := uuid.New()
	contactID := uuid.New()

	t.Run("Success publishes event and invalidates cache", func(t *testing.T) {
		uc, _, txnRepo, gw, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		txnRepo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
				txn.ID = uuid.New()
				return nil
			})
		gw.EXPECT().PublishTransactionRecorded(gomock.Any(), gomock.Any()).Return(nil)
		gw.EXPECT().InvalidateDashboardStats(gomock.Any(), userID).Return(nil)

		txn, err := uc.RecordTransaction(context.Background(), userID, validTransactionInput(contactID))
		assert.NoError(t, err)
		assert.NotNil(t, txn)
		assert.Equal(t, constants.TransactionConfirmed, txn.Status)
	})

	t.Run("Gateway failure does not fail the committed write", func(t *testing.T) {
		uc, _, txnRepo, gw, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		txnRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
		gw.EXPECT().PublishTransactionRecorded(gomock.Any(), gomock.Any()).
			Return(errors.New("nats unavailable"))
		gw.EXPECT().InvalidateDashboardStats(gomock.Any(), userID).
			Return(errors.New("redis unavailable"))

		txn, err := uc.RecordTransaction(context.Background(), userID, validTransactionInput(contactID))
		assert.NoError(t, err)
		assert.NotNil(t, txn)
	})

	t.Run("Validation failures reject before persistence", func(t *testing.T) {
		uc, _, _, _, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		testCases := []struct {
			name   string
			mutate func(*models.TransactionInput)
			field  string
		}{
			{"amount below minimum", func(in *models.TransactionInput) { in.Amount = 500 }, "amount"},
			{"amount above maximum", func(in *models.TransactionInput) { in.Amount = 20000000 }, "amount"},
			{"unknown event type", func(in *models.TransactionInput) { in.EventType = "housewarming" }, "event_type"},
			{"unknown direction", func(in *models.TransactionInput) { in.Direction = "loaned" }, "direction"},
			{"missing contact", func(in *models.TransactionInput) { in.ContactID = uuid.Nil }, "contact_id"},
			{"missing event date", func(in *models.TransactionInput) { in.EventDate = time.Time{} }, "event_date"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				input := validTransactionInput(contactID)
				tc.mutate(&input)

				txn, err := uc.RecordTransaction(context.Background(), userID, input)
				assert.Nil(t, txn)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				assert.Contains(t, apperrors.Details(err), tc.field)
			})
		}
	})

	t.Run("Unknown contact surfaces not found", func(t *testing.T) {
		uc, _, txnRepo, _, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		txnRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			Return(apperrors.NotFound("contact"))

		txn, err := uc.RecordTransaction(context.Background(), userID, validTransactionInput(contactID))
		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestDeleteTransaction(t *testing.T) {
	userID := uuid.New()
	txnID := uuid.New()

	t.Run("Success publishes deletion event", func(t *testing.T) {
		uc, _, txnRepo, gw, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		deleted := &models.Transaction{
			ID:        txnID,
			UserID:    userID,
			ContactID: uuid.New(),
			Amount:    100000,
			Direction: constants.DirectionGiven,
		}
		txnRepo.EXPECT().DeleteTransaction(gomock.Any(), userID, txnID).Return(deleted, nil)
		gw.EXPECT().PublishTransactionDeleted(gomock.Any(), gomock.Any()).Return(nil)
		gw.EXPECT().InvalidateDashboardStats(gomock.Any(), userID).Return(nil)

		err := uc.DeleteTransaction(context.Background(), userID, txnID)
		assert.NoError(t, err)
	})

	t.Run("Unknown id emits nothing", func(t *testing.T) {
		uc, _, txnRepo, _, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		txnRepo.EXPECT().DeleteTransaction(gomock.Any(), userID, txnID).
			Return(nil, apperrors.NotFound("transaction"))

		err := uc.DeleteTransaction(context.Background(), userID, txnID)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestUpdateTransaction(t *testing.T) {
	userID := uuid.New()
	txnID := uuid.New()

	t.Run("Rejects unknown status", func(t *testing.T) {
		uc, _, _, _, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		bad := "archived"
		txn, err := uc.UpdateTransaction(context.Background(), userID, txnID,
			models.TransactionUpdate{Status: &bad})
		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("Passes memo and status through", func(t *testing.T) {
		uc, _, txnRepo, _, ctrl := setupLedgerUC(t)
		defer ctrl.Finish()

		memo := "double checked"
		update := models.TransactionUpdate{Memo: &memo}
		txnRepo.EXPECT().UpdateTransaction(gomock.Any(), userID, txnID, update).
			Return(&models.Transaction{ID: txnID, Memo: memo}, nil)

		txn, err := uc.UpdateTransaction(context.Background(), userID, txnID, update)
		assert.NoError(t, err)
		assert.Equal(t, memo, txn.Memo)
	})
}

func TestListTransactions_Pagination(t *testing.T) {
	uc, _, txnRepo, _, ctrl := setupLedgerUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	// Out-of-range inputs normalize to the defaults before hitting the repo
	txnRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, models.TransactionFilter{},
			models.PageRequest{Page: 1, Limit: constants.MaxPageSize}).
		Return([]models.Transaction{}, int64(250), nil)

	_, pagination, err := uc.ListTransactions(context.Background(), userID,
		models.TransactionFilter{}, models.PageRequest{Page: 0, Limit: 1000})
	assert.NoError(t, err)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(250), pagination.TotalItems)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}
