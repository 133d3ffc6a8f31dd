package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to POSTGRES_TEST_DSN, skipping when it is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(ctx, db))
	return db
}

func TestPostgresStore_EntriesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	store := NewPostgresStore(db)
	ctx := context.Background()

	exchangeID := "EX-" + uuid.NewString()
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	entry := models.LedgerEntry{
		ID:           uuid.NewString(),
		Date:         day,
		Credit:       decimal.RequireFromString("1250.50"),
		Debit:        decimal.Zero,
		EntryType:    models.EntryTypeSaleProceeds,
		ToExchangeID: models.ExchangeRef(exchangeID),
		CreatedAt:    day,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))
	assert.ErrorIs(t, store.SaveEntry(ctx, entry), models.ErrDuplicateEntry)

	got, err := store.GetEntriesByExchange(ctx, exchangeID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, entry.Credit.Equal(got[0].Credit))
	assert.Nil(t, got[0].FromExchangeID)
	assert.Equal(t, exchangeID, *got[0].ToExchangeID)

	ranged, err := store.GetEntriesForExchanges(ctx, []string{exchangeID}, day, day)
	require.NoError(t, err)
	assert.Len(t, ranged, 1)

	outside, err := store.GetEntriesForExchanges(ctx, []string{exchangeID}, day.AddDate(0, 0, 1), day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Empty(t, outside)
}

func TestPostgresStore_CreateSpousalAccountDuplicateNumber(t *testing.T) {
	db := openTestDB(t)
	store := NewPostgresStore(db)
	ctx := context.Background()

	number := "INV-TST" + uuid.NewString()[:8]
	build := func(int) (models.TaxAccount, error) {
		return models.TaxAccount{
			ID:               uuid.NewString(),
			AccountNumber:    number,
			PrimaryProfileID: "P1",
			IsSpousal:        true,
			CreatedAt:        time.Now().UTC(),
		}, nil
	}

	_, err := store.CreateSpousalAccount(ctx, build)
	require.NoError(t, err)

	_, err = store.CreateSpousalAccount(ctx, build)
	assert.ErrorIs(t, err, models.ErrAccountNumberTaken)
}

func TestPostgresStore_IdentifiedPropertiesWithImprovements(t *testing.T) {
	db := openTestDB(t)
	store := NewPostgresStore(db)
	ctx := context.Background()

	exchangeID := "EX-" + uuid.NewString()
	improved := models.IdentifiedProperty{
		ID:         uuid.NewString(),
		ExchangeID: exchangeID,
		Address:    "12 Harbor Rd",
		Value:      decimal.NewNullDecimal(decimal.RequireFromString("400000")),
		Status:     models.PropertyStatusUnderContract,
		Improvements: []models.PropertyImprovement{
			// ids sort opposite to insertion order
			{ID: "z-" + uuid.NewString(), Value: decimal.NewNullDecimal(decimal.RequireFromString("25000.50")), Description: "roof"},
			{ID: "a-" + uuid.NewString(), Description: "estimate pending"},
		},
	}
	unpriced := models.IdentifiedProperty{
		ID:         uuid.NewString(),
		ExchangeID: exchangeID,
		Status:     models.PropertyStatusIdentified,
	}
	require.NoError(t, store.SaveProperty(ctx, improved))
	require.NoError(t, store.SaveProperty(ctx, unpriced))

	got, err := store.GetIdentifiedProperties(ctx, exchangeID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[string]models.IdentifiedProperty{got[0].ID: got[0], got[1].ID: got[1]}

	first := byID[improved.ID]
	assert.Equal(t, models.PropertyStatusUnderContract, first.Status)
	require.Len(t, first.Improvements, 2)
	assert.Equal(t, improved.Improvements[0].ID, first.Improvements[0].ID)
	assert.Equal(t, improved.Improvements[1].ID, first.Improvements[1].ID)
	assert.False(t, first.Improvements[1].Value.Valid)
	assert.True(t, decimal.RequireFromString("425000.50").Equal(first.EffectiveValue()), "effective = %s", first.EffectiveValue())

	second := byID[unpriced.ID]
	assert.Equal(t, models.PropertyStatusIdentified, second.Status)
	assert.False(t, second.Value.Valid)
	assert.Empty(t, second.Improvements)
	assert.True(t, second.EffectiveValue().IsZero())
}
