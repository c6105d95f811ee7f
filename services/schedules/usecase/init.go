package usecase

import (
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/ledger"
	"github.com/CHOIisaac/chalna-api/services/schedules"
)

// ScheduleUC implements the schedule use cases. Completion writes the linked
// ledger transaction through the ledger usecase so aggregate updates and
// event publication stay in one place.
type ScheduleUC struct {
	scheduleRepo schedules.ScheduleRepo
	txnUC        ledger.TransactionUC
	cfg          *models.Config
}

// NewScheduleUC creates a new schedule usecase instance
func NewScheduleUC(scheduleRepo schedules.ScheduleRepo, txnUC ledger.TransactionUC, cfg *models.Config) *ScheduleUC {
	return &ScheduleUC{
		scheduleRepo: scheduleRepo,
		txnUC:        txnUC,
		cfg:          cfg,
	}
}
