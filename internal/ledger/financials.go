// Package ledger reduces ledger entries into exchange and account level
// financial summaries. All functions are pure and never modify their input.
package ledger

import (
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ExchangeFinancials computes sale proceeds, replacement spend and the
// remaining value for one exchange.
//
// Any positive credit into the exchange counts as sale proceeds, and any
// positive debit out of it counts as replacement spend, whatever the entry
// type. Unclassified manual entries are picked up this way.
func ExchangeFinancials(entries []models.LedgerEntry, exchangeID string) models.ExchangeFinancials {
	sale := decimal.Zero        // credits landing in the exchange
	replacement := decimal.Zero // debits leaving the exchange

	for _, e := range entries {
		if e.IsTo(exchangeID) && (e.EntryType == models.EntryTypeSaleProceeds || e.Credit.IsPositive()) {
			sale = sale.Add(e.Credit)
		}
		if e.IsFrom(exchangeID) && (e.EntryType == models.EntryTypePurchaseFunds || e.Debit.IsPositive()) {
			replacement = replacement.Add(e.Debit)
		}
	}

	return models.ExchangeFinancials{
		TotalSalePropertyValue:   sale,
		TotalReplacementProperty: replacement,
		ValueRemaining:           sale.Sub(replacement), // negative when overspent
	}
}

// ExchangeBalance is the cash the intermediary holds for the exchange: every
// credit into it minus every debit out of it.
func ExchangeBalance(entries []models.LedgerEntry, exchangeID string) decimal.Decimal {
	balance := decimal.Zero

	for _, e := range entries {
		// an internal transfer may match both sides for different exchanges
		if e.IsTo(exchangeID) {
			balance = balance.Add(e.Credit) // money received
		}
		if e.IsFrom(exchangeID) {
			balance = balance.Sub(e.Debit) // money sent
		}
	}
	return balance
}
