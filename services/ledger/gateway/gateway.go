package gateway

import (
	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	natspkg "github.com/CHOIisaac/chalna-api/internal/pkg/nats"
)

// LedgerGW fans ledger side effects out to NATS and Redis
type LedgerGW struct {
	producer    *natspkg.Producer
	redisClient *database.RedisClient
}

// NewLedgerGW creates a new ledger gateway instance
func NewLedgerGW(producer *natspkg.Producer, redisClient *database.RedisClient) *LedgerGW {
	return &LedgerGW{
		producer:    producer,
		redisClient: redisClient,
	}
}
