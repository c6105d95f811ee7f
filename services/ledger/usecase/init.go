package usecase

import (
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/ledger"
)

// LedgerUC implements the contact and transaction use cases
type LedgerUC struct {
	contactRepo ledger.ContactRepo
	txnRepo     ledger.TransactionRepo
	ledgerGW    ledger.LedgerGW
	cfg         *models.Config
}

// NewLedgerUC creates a new ledger usecase instance
func NewLedgerUC(
	contactRepo ledger.ContactRepo,
	txnRepo ledger.TransactionRepo,
	ledgerGW ledger.LedgerGW,
	cfg *models.Config,
) *LedgerUC {
	return &LedgerUC{
		contactRepo: contactRepo,
		txnRepo:     txnRepo,
		ledgerGW:    ledgerGW,
		cfg:         cfg,
	}
}
