package ledger_test

import (
	"testing"
	"time"

	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/ledger"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearToDateMetrics(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	entries := []models.LedgerEntry{
		entry(models.EntryTypeSaleProceeds, "", "EX1", "500000", "0", start),
		entry(models.EntryTypeWireIn, "", "EX1", "20000", "0", start.AddDate(0, 2, 0)),
		entry(models.EntryTypePurchaseFunds, "EX1", "", "0", "400000", start.AddDate(0, 3, 0)),
		entry(models.EntryTypeFees, "EX1", "", "0", "2500", start.AddDate(0, 3, 0)),
		entry(models.EntryTypeWireOut, "EX1", "", "0", "7500", start.AddDate(0, 4, 0)),
		entry(models.EntryTypeSaleProceeds, "", "EX2", "100000", "0", start.AddDate(0, 5, 0)),
		// last instant of the end day is included
		entry(models.EntryTypeSaleProceeds, "", "EX2", "1", "0", end.Add(23*time.Hour+59*time.Minute)),
		// outside the range
		entry(models.EntryTypeSaleProceeds, "", "EX1", "999999", "0", start.Add(-time.Nanosecond)),
		entry(models.EntryTypeSaleProceeds, "", "EX1", "999999", "0", end.AddDate(0, 0, 1)),
		// exchange not owned by the account
		entry(models.EntryTypeSaleProceeds, "", "EX9", "888888", "0", start),
	}

	got := ledger.YearToDateMetrics(entries, []string{"EX1", "EX2"}, start, end)

	assertDecimal(t, "600001", got.TotalValuePropertySold, "sold")
	assertDecimal(t, "620001", got.TotalAmountReceivedToQI, "received")
	assertDecimal(t, "400000", got.TotalExchangeableValueAcquired, "acquired")
	assertDecimal(t, "410000", got.TotalFundsSentFromExchange, "sent")
	assertDecimal(t, "2500", got.TotalFees, "fees")
	assertDecimal(t, "217501", got.FundsReturnedToExchanger, "returned")
}

func TestYearToDateMetrics_EmptyExchangeSet(t *testing.T) {
	entries := []models.LedgerEntry{
		entry(models.EntryTypeSaleProceeds, "", "EX1", "500000", "0", baseDate),
	}

	got := ledger.YearToDateMetrics(entries, nil, baseDate, baseDate.AddDate(1, 0, 0))

	for field, v := range map[string]string{
		"sold":     got.TotalValuePropertySold.String(),
		"received": got.TotalAmountReceivedToQI.String(),
		"acquired": got.TotalExchangeableValueAcquired.String(),
		"sent":     got.TotalFundsSentFromExchange.String(),
		"fees":     got.TotalFees.String(),
		"returned": got.FundsReturnedToExchanger.String(),
	} {
		assert.Equal(t, "0", v, field)
	}
}

func TestYearToDateMetrics_FundsReturnedNeverNegative(t *testing.T) {
	entries := []models.LedgerEntry{
		entry(models.EntryTypeSaleProceeds, "", "EX1", "100000", "0", baseDate),
		entry(models.EntryTypePurchaseFunds, "EX1", "", "0", "95000", baseDate),
		entry(models.EntryTypeFees, "EX1", "", "0", "10000", baseDate),
	}

	got := ledger.YearToDateMetrics(entries, []string{"EX1"}, baseDate, baseDate)

	assertDecimal(t, "0", got.FundsReturnedToExchanger, "returned")
	assert.False(t, got.FundsReturnedToExchanger.IsNegative())
}

// The single-exchange summary counts any positive amount while the
// year-to-date totals only count typed entries. Both behaviours are relied
// on, so this pins the difference.
func TestYearToDateMetrics_StricterThanExchangeFinancials(t *testing.T) {
	entries := []models.LedgerEntry{
		entry(models.EntryTypeManual, "", "EX1", "1000", "0", baseDate),
		entry(models.EntryTypeManual, "EX1", "", "0", "400", baseDate),
	}

	financials := ledger.ExchangeFinancials(entries, "EX1")
	ytd := ledger.YearToDateMetrics(entries, []string{"EX1"}, baseDate, baseDate)

	assertDecimal(t, "1000", financials.TotalSalePropertyValue, "financials sale")
	assertDecimal(t, "400", financials.TotalReplacementProperty, "financials replacement")
	assertDecimal(t, "0", ytd.TotalValuePropertySold, "ytd sold")
	assertDecimal(t, "0", ytd.TotalExchangeableValueAcquired, "ytd acquired")
	assertDecimal(t, "1000", ytd.TotalAmountReceivedToQI, "ytd received")
	assertDecimal(t, "400", ytd.TotalFundsSentFromExchange, "ytd sent")
}

func TestFilterEntries(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	inRangeTo := entry(models.EntryTypeSaleProceeds, "", "EX1", "1", "0", start.Add(10*time.Hour))
	inRangeFrom := entry(models.EntryTypeFees, "EX1", "", "0", "1", end.Add(12*time.Hour))
	transfer := entry(models.EntryTypeManual, "EX7", "EX1", "1", "1", start.AddDate(0, 0, 5))

	entries := []models.LedgerEntry{
		inRangeTo,
		inRangeFrom,
		transfer,
		entry(models.EntryTypeSaleProceeds, "", "EX2", "1", "0", start),
		entry(models.EntryTypeWireIn, "", "", "1", "0", start),
		entry(models.EntryTypeSaleProceeds, "", "EX1", "1", "0", end.AddDate(0, 0, 1)),
	}

	got := ledger.FilterEntries(entries, []string{"EX1"}, start, end)

	assert.Equal(t, []models.LedgerEntry{inRangeTo, inRangeFrom, transfer}, got)
}

func TestDayBounds(t *testing.T) {
	from, to := ledger.DayBounds(
		time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC),
		time.Date(2025, 6, 20, 1, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 20, 23, 59, 59, 999999999, time.UTC), to)
}

func TestDayBounds_DaylightSavingTransitions(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		day  time.Time
		want time.Time
	}{
		{
			name: "spring forward day is 23 hours",
			day:  time.Date(2025, 3, 9, 12, 0, 0, 0, ny),
			want: time.Date(2025, 3, 9, 23, 59, 59, 999999999, ny),
		},
		{
			name: "fall back day is 25 hours",
			day:  time.Date(2025, 11, 2, 12, 0, 0, 0, ny),
			want: time.Date(2025, 11, 2, 23, 59, 59, 999999999, ny),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := ledger.DayBounds(tt.day, tt.day)

			assert.True(t, from.Equal(time.Date(tt.day.Year(), tt.day.Month(), tt.day.Day(), 0, 0, 0, 0, ny)), "from = %s", from)
			assert.True(t, tt.want.Equal(to), "to = %s", to)
			assert.Equal(t, tt.day.Day(), to.In(ny).Day())
		})
	}
}

func TestYearToDateMetrics_FallBackDayKeepsLastHour(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2025, 11, 2, 0, 0, 0, 0, ny)
	entries := []models.LedgerEntry{
		entry(models.EntryTypeSaleProceeds, "", "EX1", "100", "0", time.Date(2025, 11, 2, 23, 30, 0, 0, ny)),
		entry(models.EntryTypeSaleProceeds, "", "EX1", "999", "0", time.Date(2025, 11, 3, 0, 30, 0, 0, ny)),
	}

	got := ledger.YearToDateMetrics(entries, []string{"EX1"}, day, day)

	assertDecimal(t, "100", got.TotalValuePropertySold, "sold")
}

func TestYearToDateMetrics_SpringForwardDayExcludesNextDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2025, 3, 9, 0, 0, 0, 0, ny)
	entries := []models.LedgerEntry{
		entry(models.EntryTypeSaleProceeds, "", "EX1", "100", "0", time.Date(2025, 3, 9, 23, 30, 0, 0, ny)),
		entry(models.EntryTypeSaleProceeds, "", "EX1", "999", "0", time.Date(2025, 3, 10, 0, 30, 0, 0, ny)),
	}

	got := ledger.YearToDateMetrics(entries, []string{"EX1"}, day, day)

	assertDecimal(t, "100", got.TotalValuePropertySold, "sold")
}
