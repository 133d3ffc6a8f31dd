package ledger

import (
	"time"

	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// YearToDateMetrics aggregates entries touching any of exchangeIDs whose date
// falls within [start, end], compared by calendar day.
//
// Unlike ExchangeFinancials, sold and acquired totals only count entries
// explicitly typed as sale_proceeds or purchase_funds.
func YearToDateMetrics(entries []models.LedgerEntry, exchangeIDs []string, start, end time.Time) models.YTDMetrics {
	metrics := models.YTDMetrics{
		TotalValuePropertySold:         decimal.Zero,
		TotalAmountReceivedToQI:        decimal.Zero,
		TotalExchangeableValueAcquired: decimal.Zero,
		TotalFundsSentFromExchange:     decimal.Zero,
		TotalFees:                      decimal.Zero,
		FundsReturnedToExchanger:       decimal.Zero,
	}
	if len(exchangeIDs) == 0 {
		return metrics // nothing to aggregate
	}

	ids := idSet(exchangeIDs)
	for _, e := range filterByDate(entries, start, end) {
		// received by one of the account's exchanges
		if e.ToExchangeID != nil && ids[*e.ToExchangeID] {
			metrics.TotalAmountReceivedToQI = metrics.TotalAmountReceivedToQI.Add(e.Credit)
			if e.EntryType == models.EntryTypeSaleProceeds {
				metrics.TotalValuePropertySold = metrics.TotalValuePropertySold.Add(e.Credit)
			}
		}
		// sent by one of the account's exchanges
		if e.FromExchangeID != nil && ids[*e.FromExchangeID] {
			metrics.TotalFundsSentFromExchange = metrics.TotalFundsSentFromExchange.Add(e.Debit)
			switch e.EntryType {
			case models.EntryTypePurchaseFunds:
				metrics.TotalExchangeableValueAcquired = metrics.TotalExchangeableValueAcquired.Add(e.Debit)
			case models.EntryTypeFees:
				metrics.TotalFees = metrics.TotalFees.Add(e.Debit)
			}
		}
	}

	// boot is never reported as negative
	boot := metrics.TotalAmountReceivedToQI.
		Sub(metrics.TotalExchangeableValueAcquired).
		Sub(metrics.TotalFees)
	metrics.FundsReturnedToExchanger = decimal.Max(decimal.Zero, boot)

	return metrics
}

// FilterEntries returns the entries dated within [start, end] (by calendar
// day) that touch any of exchangeIDs on either side.
func FilterEntries(entries []models.LedgerEntry, exchangeIDs []string, start, end time.Time) []models.LedgerEntry {
	ids := idSet(exchangeIDs)

	var filtered []models.LedgerEntry
	for _, e := range filterByDate(entries, start, end) {
		to := e.ToExchangeID != nil && ids[*e.ToExchangeID]
		from := e.FromExchangeID != nil && ids[*e.FromExchangeID]
		if to || from {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// DayBounds truncates start to midnight and moves end to the last instant
// of its day, both in their own locations.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	// next midnight minus one instant; days are not always 24h long
	to := time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, end.Location()).
		Add(-time.Nanosecond)
	return from, to
}

func filterByDate(entries []models.LedgerEntry, start, end time.Time) []models.LedgerEntry {
	from, to := DayBounds(start, end)

	var filtered []models.LedgerEntry
	for _, e := range entries {
		if !e.Date.Before(from) && !e.Date.After(to) { // both bounds inclusive
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
