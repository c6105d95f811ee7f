package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// LedgerRepo implements contact and transaction persistence on PostgreSQL
type LedgerRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewLedgerRepo creates a new ledger repository instance
func NewLedgerRepo(cfg *models.Config, client *database.PostgresClient) *LedgerRepo {
	return &LedgerRepo{
		db:  client.GetDB(),
		cfg: cfg,
	}
}
