package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/ledger"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
)

// Store is an in-memory implementation of the ledger, property and tax
// account stores. It is safe for concurrent use.
type Store struct {
	mu         sync.Mutex                             // protects every field below
	entries    []models.LedgerEntry                   // append-only ledger
	properties map[string][]models.IdentifiedProperty // by exchange id
	accounts   map[string]models.TaxAccount           // by tax account id
	exchanges  map[string][]string                    // exchange ids by tax account id
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries:    make([]models.LedgerEntry, 0),
		properties: make(map[string][]models.IdentifiedProperty),
		accounts:   make(map[string]models.TaxAccount),
		exchanges:  make(map[string][]string),
	}
}

// SaveEntry appends an entry to the ledger. Entry ids are unique, like the
// primary key of the postgres table.
func (m *Store) SaveEntry(ctx context.Context, entry models.LedgerEntry) error {
	m.mu.Lock()         // lock the mutex to prevent concurrent writes
	defer m.mu.Unlock() // unlock automatically when function exits

	for _, e := range m.entries {
		if e.ID == entry.ID {
			return models.ErrDuplicateEntry
		}
	}

	m.entries = append(m.entries, entry) // the ledger is append-only, entries are never rewritten
	return nil
}

// GetEntriesByExchange returns a copy of every entry touching the exchange.
func (m *Store) GetEntriesByExchange(ctx context.Context, exchangeID string) ([]models.LedgerEntry, error) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading or writing
	defer m.mu.Unlock() // unlock automatically at the end

	var result []models.LedgerEntry // new slice, callers never see internal state
	for _, e := range m.entries {
		if e.IsTo(exchangeID) || e.IsFrom(exchangeID) { // either side of the movement
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *Store) GetEntriesForExchanges(ctx context.Context, exchangeIDs []string, start, end time.Time) ([]models.LedgerEntry, error) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading or writing
	defer m.mu.Unlock() // unlock automatically at the end

	// FilterEntries builds a fresh slice, so the internal one is not shared
	return ledger.FilterEntries(m.entries, exchangeIDs, start, end), nil
}

// AddProperty records an identified property under its exchange.
func (m *Store) AddProperty(property models.IdentifiedProperty) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading or writing
	defer m.mu.Unlock() // unlock automatically at the end

	m.properties[property.ExchangeID] = append(m.properties[property.ExchangeID], copyProperty(property))
}

func (m *Store) GetIdentifiedProperties(ctx context.Context, exchangeID string) ([]models.IdentifiedProperty, error) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading or writing
	defer m.mu.Unlock() // unlock automatically at the end

	stored := m.properties[exchangeID]
	copied := make([]models.IdentifiedProperty, 0, len(stored))
	for _, p := range stored {
		copied = append(copied, copyProperty(p))
	}
	return copied, nil
}

// AddTaxAccount stores an account together with the exchanges it owns.
func (m *Store) AddTaxAccount(account models.TaxAccount, exchangeIDs ...string) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading or writing
	defer m.mu.Unlock() // unlock automatically at the end

	m.accounts[account.ID] = account
	m.exchanges[account.ID] = append(m.exchanges[account.ID], exchangeIDs...)
}

func (m *Store) GetExchangeIDs(ctx context.Context, taxAccountID string) ([]string, error) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading or writing
	defer m.mu.Unlock() // unlock automatically at the end

	if _, ok := m.accounts[taxAccountID]; !ok {
		return nil, models.ErrTaxAccountNotFound
	}
	return slices.Clone(m.exchanges[taxAccountID]), nil
}

// CreateSpousalAccount holds the store lock across the count and the insert.
func (m *Store) CreateSpousalAccount(ctx context.Context, build interfaces.SpousalAccountBuilder) (models.TaxAccount, error) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading or writing
	defer m.mu.Unlock() // unlock automatically at the end

	// count and insert happen under the same lock, so no two calls see the same count
	spousal := 0
	for _, a := range m.accounts {
		if a.IsSpousal {
			spousal++
		}
	}

	account, err := build(spousal) // numbering is done by the caller
	if err != nil {
		return models.TaxAccount{}, err
	}

	for _, a := range m.accounts {
		if a.AccountNumber == account.AccountNumber {
			return models.TaxAccount{}, models.ErrAccountNumberTaken
		}
	}

	m.accounts[account.ID] = account
	return account, nil
}

func copyProperty(p models.IdentifiedProperty) models.IdentifiedProperty {
	p.Improvements = slices.Clone(p.Improvements) // the struct is copied by value, the slice is not
	return p
}

// Compile-time check: ensure Store implements the store interfaces
var (
	_ interfaces.LedgerStore     = (*Store)(nil)
	_ interfaces.PropertyStore   = (*Store)(nil)
	_ interfaces.TaxAccountStore = (*Store)(nil)
)
