package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS tax_accounts (
	id                 TEXT PRIMARY KEY,
	account_number     TEXT NOT NULL UNIQUE,
	primary_profile_id TEXT NOT NULL,
	spouse_profile_id  TEXT,
	is_spousal         BOOLEAN NOT NULL DEFAULT FALSE,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exchanges (
	id             TEXT PRIMARY KEY,
	tax_account_id TEXT NOT NULL REFERENCES tax_accounts(id),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ledger_entries (
	id               TEXT PRIMARY KEY,
	entry_date       TIMESTAMPTZ NOT NULL,
	credit           NUMERIC(18,2) NOT NULL DEFAULT 0,
	debit            NUMERIC(18,2) NOT NULL DEFAULT 0,
	entry_type       TEXT NOT NULL,
	from_exchange_id TEXT,
	to_exchange_id   TEXT,
	transaction_id   TEXT,
	task_id          TEXT,
	settlement_id    TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ledger_entries_from_idx ON ledger_entries (from_exchange_id, entry_date);
CREATE INDEX IF NOT EXISTS ledger_entries_to_idx ON ledger_entries (to_exchange_id, entry_date);

CREATE TABLE IF NOT EXISTS identified_properties (
	id          TEXT PRIMARY KEY,
	exchange_id TEXT NOT NULL,
	address     TEXT NOT NULL DEFAULT '',
	value       NUMERIC(18,2),
	status      TEXT NOT NULL DEFAULT 'identified',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS property_improvements (
	id          TEXT PRIMARY KEY,
	property_id TEXT NOT NULL REFERENCES identified_properties(id),
	value       NUMERIC(18,2),
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);

ALTER TABLE property_improvements ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp();
`

// Open connects to postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(20)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(15 * time.Minute)

	return db, nil
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
