package interfaces

import (
	"context"
	"time"

	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
)

//go:generate mockgen -destination=mocks/mock_stores.go -package=mocks -source=ledger_store.go

// LedgerStore is the append-only source of ledger entries.
type LedgerStore interface {
	// SaveEntry returns models.ErrDuplicateEntry when an entry with the same
	// id was already saved.
	SaveEntry(ctx context.Context, entry models.LedgerEntry) error
	// GetEntriesByExchange returns every entry with the exchange on either side.
	GetEntriesByExchange(ctx context.Context, exchangeID string) ([]models.LedgerEntry, error)
	// GetEntriesForExchanges returns entries touching any of exchangeIDs dated
	// within [start, end] by calendar day.
	GetEntriesForExchanges(ctx context.Context, exchangeIDs []string, start, end time.Time) ([]models.LedgerEntry, error)
}

// PropertyStore returns identified properties, improvements included.
type PropertyStore interface {
	GetIdentifiedProperties(ctx context.Context, exchangeID string) ([]models.IdentifiedProperty, error)
}

// SpousalAccountBuilder turns the number of spousal accounts that already
// exist into the account to insert.
type SpousalAccountBuilder func(existingSpousal int) (models.TaxAccount, error)

// TaxAccountStore holds tax accounts and the exchanges they own.
type TaxAccountStore interface {
	GetExchangeIDs(ctx context.Context, taxAccountID string) ([]string, error)
	// CreateSpousalAccount counts the existing spousal accounts, passes the
	// count to build and inserts the result. Implementations must serialize
	// the count and the insert so two concurrent calls never observe the
	// same count, and return models.ErrAccountNumberTaken when the account
	// number collides with an existing one.
	CreateSpousalAccount(ctx context.Context, build SpousalAccountBuilder) (models.TaxAccount, error)
}
