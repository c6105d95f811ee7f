package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
)

func TestListEventSettings(t *testing.T) {
	t.Run("Returns rows in display order", func(t *testing.T) {
		repo, mock, cleanup := setupLedgerRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"event_type", "default_amount", "display_order"}).
			AddRow("wedding", int64(100000), 1).
			AddRow("funeral", int64(100000), 2).
			AddRow("birthday", int64(30000), 4)

		mock.ExpectQuery("SELECT event_type, default_amount, display_order").
			WillReturnRows(rows)

		settings, err := repo.ListEventSettings(context.Background())
		assert.NoError(t, err)
		assert.Len(t, settings, 3)
		assert.Equal(t, constants.EventWedding, settings[0].EventType)
		assert.Equal(t, int64(100000), settings[0].DefaultAmount)
		assert.Equal(t, 4, settings[2].DisplayOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query failure", func(t *testing.T) {
		repo, mock, cleanup := setupLedgerRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT event_type, default_amount, display_order").
			WillReturnError(errors.New("relation does not exist"))

		settings, err := repo.ListEventSettings(context.Background())
		assert.Error(t, err)
		assert.Nil(t, settings)
	})
}
