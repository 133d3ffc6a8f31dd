package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/ledger"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
)

// spousalNumberingLock is the advisory lock key guarding account numbering.
const spousalNumberingLock = 1031

// uniqueViolation is the postgres error code for a unique constraint failure.
const uniqueViolation = "23505"

const entryColumns = `id, entry_date, credit, debit, entry_type, from_exchange_id, to_exchange_id,
	transaction_id, task_id, settlement_id, created_at`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (p *PostgresStore) SaveEntry(ctx context.Context, entry models.LedgerEntry) error {
	const query = `INSERT INTO ledger_entries (` + entryColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := p.db.ExecContext(ctx, query,
		entry.ID,
		entry.Date,
		entry.Credit,
		entry.Debit,
		string(entry.EntryType),
		entry.FromExchangeID,
		entry.ToExchangeID,
		entry.TransactionID,
		entry.TaskID,
		entry.SettlementID,
		entry.CreatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return models.ErrDuplicateEntry
	}
	return err
}

func (p *PostgresStore) GetEntriesByExchange(ctx context.Context, exchangeID string) ([]models.LedgerEntry, error) {
	const query = `SELECT ` + entryColumns + ` FROM ledger_entries
	WHERE from_exchange_id = $1 OR to_exchange_id = $1
	ORDER BY entry_date, created_at`

	rows, err := p.db.QueryContext(ctx, query, exchangeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (p *PostgresStore) GetEntriesForExchanges(ctx context.Context, exchangeIDs []string, start, end time.Time) ([]models.LedgerEntry, error) {
	if len(exchangeIDs) == 0 {
		return nil, nil
	}

	const query = `SELECT ` + entryColumns + ` FROM ledger_entries
	WHERE (from_exchange_id = ANY($1) OR to_exchange_id = ANY($1))
	AND entry_date BETWEEN $2 AND $3
	ORDER BY entry_date, created_at`

	from, to := ledger.DayBounds(start, end)
	rows, err := p.db.QueryContext(ctx, query, pq.Array(exchangeIDs), from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (p *PostgresStore) GetIdentifiedProperties(ctx context.Context, exchangeID string) ([]models.IdentifiedProperty, error) {
	const query = `SELECT id, exchange_id, address, value, status FROM identified_properties
	WHERE exchange_id = $1
	ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, query, exchangeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.IdentifiedProperty
	index := make(map[string]int)
	for rows.Next() {
		var (
			property models.IdentifiedProperty
			status   string
		)
		if err := rows.Scan(&property.ID, &property.ExchangeID, &property.Address, &property.Value, &status); err != nil {
			return nil, err
		}
		property.Status = models.PropertyStatus(status)
		index[property.ID] = len(properties)
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return properties, nil
	}

	ids := make([]string, 0, len(properties))
	for _, property := range properties {
		ids = append(ids, property.ID)
	}

	const improvementsQuery = `SELECT id, property_id, value, description FROM property_improvements
	WHERE property_id = ANY($1)
	ORDER BY created_at, id`

	impRows, err := p.db.QueryContext(ctx, improvementsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer impRows.Close()

	for impRows.Next() {
		var (
			improvement models.PropertyImprovement
			propertyID  string
		)
		if err := impRows.Scan(&improvement.ID, &propertyID, &improvement.Value, &improvement.Description); err != nil {
			return nil, err
		}
		if i, ok := index[propertyID]; ok {
			properties[i].Improvements = append(properties[i].Improvements, improvement)
		}
	}
	if err := impRows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

// SaveProperty inserts an identified property and its improvements in one
// transaction. Improvements keep the order of the slice.
func (p *PostgresStore) SaveProperty(ctx context.Context, property models.IdentifiedProperty) (err error) {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const insertProperty = `INSERT INTO identified_properties (id, exchange_id, address, value, status)
	VALUES ($1,$2,$3,$4,$5)`

	_, err = dbTx.ExecContext(ctx, insertProperty,
		property.ID,
		property.ExchangeID,
		property.Address,
		property.Value,
		string(property.Status),
	)
	if err != nil {
		return err
	}

	// clock_timestamp default gives each improvement its own creation time
	const insertImprovement = `INSERT INTO property_improvements (id, property_id, value, description)
	VALUES ($1,$2,$3,$4)`

	for _, improvement := range property.Improvements {
		_, err = dbTx.ExecContext(ctx, insertImprovement,
			improvement.ID,
			property.ID,
			improvement.Value,
			improvement.Description,
		)
		if err != nil {
			return err
		}
	}

	return dbTx.Commit()
}

func (p *PostgresStore) GetExchangeIDs(ctx context.Context, taxAccountID string) ([]string, error) {
	const accountQuery = `SELECT 1 FROM tax_accounts WHERE id = $1`

	var exists int
	err := p.db.QueryRowContext(ctx, accountQuery, taxAccountID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTaxAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	const query = `SELECT id FROM exchanges WHERE tax_account_id = $1 ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, query, taxAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateSpousalAccount counts and inserts inside one transaction holding an
// advisory lock, so concurrent provisioning is serialized.
func (p *PostgresStore) CreateSpousalAccount(ctx context.Context, build interfaces.SpousalAccountBuilder) (account models.TaxAccount, err error) {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return models.TaxAccount{}, err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	if _, err = dbTx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, spousalNumberingLock); err != nil {
		return models.TaxAccount{}, err
	}

	var spousal int
	if err = dbTx.QueryRowContext(ctx, `SELECT count(*) FROM tax_accounts WHERE is_spousal`).Scan(&spousal); err != nil {
		return models.TaxAccount{}, err
	}

	account, err = build(spousal)
	if err != nil {
		return models.TaxAccount{}, err
	}

	const insert = `INSERT INTO tax_accounts (id, account_number, primary_profile_id, spouse_profile_id, is_spousal, created_at)
	VALUES ($1,$2,$3,$4,$5,$6)`

	_, err = dbTx.ExecContext(ctx, insert,
		account.ID,
		account.AccountNumber,
		account.PrimaryProfileID,
		account.SpouseProfileID,
		account.IsSpousal,
		account.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			err = models.ErrAccountNumberTaken
		}
		return models.TaxAccount{}, err
	}

	if err = dbTx.Commit(); err != nil {
		return models.TaxAccount{}, err
	}
	return account, nil
}

func scanEntries(rows *sql.Rows) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	for rows.Next() {
		var (
			entry     models.LedgerEntry
			entryType string
		)
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Credit,
			&entry.Debit,
			&entryType,
			&entry.FromExchangeID,
			&entry.ToExchangeID,
			&entry.TransactionID,
			&entry.TaskID,
			&entry.SettlementID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entry.EntryType = models.EntryType(entryType)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

var (
	_ interfaces.LedgerStore     = (*PostgresStore)(nil)
	_ interfaces.PropertyStore   = (*PostgresStore)(nil)
	_ interfaces.TaxAccountStore = (*PostgresStore)(nil)
)
