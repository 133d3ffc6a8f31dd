package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies what a ledger movement represents.
type EntryType string

const (
	EntryTypeSaleProceeds  EntryType = "sale_proceeds"
	EntryTypePurchaseFunds EntryType = "purchase_funds"
	EntryTypeFees          EntryType = "fees"
	EntryTypeEarnestMoney  EntryType = "earnest_money"
	EntryTypeWireIn        EntryType = "wire_in"
	EntryTypeWireOut       EntryType = "wire_out"
	EntryTypeManual        EntryType = "manual"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeSaleProceeds, EntryTypePurchaseFunds, EntryTypeFees,
		EntryTypeEarnestMoney, EntryTypeWireIn, EntryTypeWireOut, EntryTypeManual:
		return true
	}
	return false
}

// LedgerEntry is one monetary movement between exchanges, or between an
// exchange and the outside world. Entries are append-only.
//
// An entry counts as "received" by the exchange named in ToExchangeID and as
// "sent" by the exchange named in FromExchangeID. Both may be set for an
// internal transfer, and neither for an external wire.
type LedgerEntry struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Credit         decimal.Decimal `json:"credit"`
	Debit          decimal.Decimal `json:"debit"`
	EntryType      EntryType       `json:"entry_type"`
	FromExchangeID *string         `json:"from_exchange_id,omitempty"`
	ToExchangeID   *string         `json:"to_exchange_id,omitempty"`

	// context links, not used by aggregation
	TransactionID *string `json:"transaction_id,omitempty"`
	TaskID        *string `json:"task_id,omitempty"`
	SettlementID  *string `json:"settlement_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsTo reports whether the entry lands in the given exchange.
func (e LedgerEntry) IsTo(exchangeID string) bool {
	return e.ToExchangeID != nil && *e.ToExchangeID == exchangeID
}

// IsFrom reports whether the entry leaves the given exchange.
func (e LedgerEntry) IsFrom(exchangeID string) bool {
	return e.FromExchangeID != nil && *e.FromExchangeID == exchangeID
}

// ExchangeRef returns a pointer to id, or nil when id is empty.
func ExchangeRef(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
