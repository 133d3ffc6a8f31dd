package models

import "errors"

var (
	ErrExchangeIDRequired   = errors.New("exchange_id is a mandatory field")
	ErrTaxAccountIDRequired = errors.New("tax_account_id is a mandatory field")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrInvalidEntryType     = errors.New("unknown entry type")
	ErrInvalidAmount        = errors.New("amounts must not be negative")
	ErrProfileIDRequired    = errors.New("primary and spouse profile ids are required")
	ErrTaxAccountNotFound   = errors.New("tax account not found")
	ErrAccountNumberTaken   = errors.New("account number already assigned")
	ErrDuplicateEntry       = errors.New("ledger entry already recorded")
)
