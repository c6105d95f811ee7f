package usecase

import (
	"time"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// ContactTotals is the aggregate state reduced from a transaction log
type ContactTotals struct {
	TotalGiven    int64
	TotalReceived int64
	Balance       int64
	EventCount    int
	LastEventDate *time.Time
}

// ReduceContactTotals folds a transaction log into the aggregate state the
// contacts table caches. The database rebuild in RecalculateContactTotals
// computes the same reduction in SQL; this pure form exists so the
// equivalence can be asserted without a database.
func ReduceContactTotals(txns []models.Transaction) ContactTotals {
	var totals ContactTotals

	for _, txn := range txns {
		if txn.Direction == constants.DirectionGiven {
			totals.TotalGiven += txn.Amount
		} else {
			totals.TotalReceived += txn.Amount
		}
		totals.EventCount++

		if totals.LastEventDate == nil || txn.EventDate.After(*totals.LastEventDate) {
			d := txn.EventDate
			totals.LastEventDate = &d
		}
	}

	totals.Balance = totals.TotalGiven - totals.TotalReceived
	return totals
}
