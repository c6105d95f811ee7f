package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReduceContactTotals(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		totals := ReduceContactTotals(nil)
		assert.Equal(t, ContactTotals{}, totals)
	})

	t.Run("mixed directions", func(t *testing.T) {
		txns := []models.Transaction{
			{Direction: constants.DirectionGiven, Amount: 100000, EventDate: day(2026, 5, 10)},
			{Direction: constants.DirectionReceived, Amount: 50000, EventDate: day(2026, 3, 1)},
			{Direction: constants.DirectionGiven, Amount: 30000, EventDate: day(2026, 8, 20)},
		}

		totals := ReduceContactTotals(txns)
		assert.Equal(t, int64(130000), totals.TotalGiven)
		assert.Equal(t, int64(50000), totals.TotalReceived)
		assert.Equal(t, int64(80000), totals.Balance)
		assert.Equal(t, 3, totals.EventCount)
		require.NotNil(t, totals.LastEventDate)
		assert.Equal(t, day(2026, 8, 20), *totals.LastEventDate)
	})

	t.Run("balance invariant holds for any log", func(t *testing.T) {
		txns := []models.Transaction{}
		amounts := []int64{1000, 250000, 9999000, 30000, 77000}
		for i, amount := range amounts {
			dir := constants.DirectionGiven
			if i%2 == 1 {
				dir = constants.DirectionReceived
			}
			txns = append(txns, models.Transaction{
				Direction: dir,
				Amount:    amount,
				EventDate: day(2026, time.Month(i+1), 1),
			})

			totals := ReduceContactTotals(txns)
			assert.Equal(t, totals.TotalGiven-totals.TotalReceived, totals.Balance)
			assert.Equal(t, len(txns), totals.EventCount)
		}
	})

	t.Run("delete then re-add round trip", func(t *testing.T) {
		base := []models.Transaction{
			{Direction: constants.DirectionGiven, Amount: 100000, EventDate: day(2026, 5, 10)},
			{Direction: constants.DirectionReceived, Amount: 50000, EventDate: day(2026, 6, 1)},
		}
		extra := models.Transaction{Direction: constants.DirectionGiven, Amount: 30000, EventDate: day(2026, 7, 1)}

		before := ReduceContactTotals(base)
		after := ReduceContactTotals(append(append([]models.Transaction{}, base...), extra))
		roundTrip := ReduceContactTotals(base)

		assert.NotEqual(t, before, after)
		assert.Equal(t, before, roundTrip)
	})
}
