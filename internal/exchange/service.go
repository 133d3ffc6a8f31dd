// Package exchange loads ledger and property snapshots from storage and runs
// them through the aggregation and compliance engines.
package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/ledger"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models/events"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/rules"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	entries    interfaces.LedgerStore
	properties interfaces.PropertyStore
	accounts   interfaces.TaxAccountStore
	publisher  interfaces.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(
	entries interfaces.LedgerStore,
	properties interfaces.PropertyStore,
	accounts interfaces.TaxAccountStore,
	publisher interfaces.EventPublisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		entries:    entries,
		properties: properties,
		accounts:   accounts,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// Financials returns sale proceeds, replacement spend and remaining value.
func (s *Service) Financials(ctx context.Context, exchangeID string) (models.ExchangeFinancials, error) {
	entries, err := s.exchangeEntries(ctx, exchangeID)
	if err != nil {
		return models.ExchangeFinancials{}, err
	}
	return ledger.ExchangeFinancials(entries, exchangeID), nil
}

// Balance returns the cash held for the exchange.
func (s *Service) Balance(ctx context.Context, exchangeID string) (decimal.Decimal, error) {
	entries, err := s.exchangeEntries(ctx, exchangeID)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.ExchangeBalance(entries, exchangeID), nil
}

// RuleStatus evaluates the exchange's identified properties against its
// sale proceeds and publishes the result.
func (s *Service) RuleStatus(ctx context.Context, exchangeID string) (models.ExchangeRuleStatus, error) {
	entries, properties, err := s.snapshot(ctx, exchangeID)
	if err != nil {
		return models.ExchangeRuleStatus{}, err
	}

	saleValue := ledger.ExchangeFinancials(entries, exchangeID).TotalSalePropertyValue
	status := rules.EvaluateRule(properties, saleValue)

	if !status.IsCompliant {
		s.logger.Warn("exchange.rule_violation",
			"exchange_id", exchangeID,
			"rule", string(status.ActiveRule),
			"identified_value", status.TotalIdentifiedValue.String(),
			"sale_value", status.TotalSaleValue.String(),
		)
	}

	event := events.RuleStatusEvaluated{
		ExchangeID:           exchangeID,
		ActiveRule:           string(status.ActiveRule),
		IsCompliant:          status.IsCompliant,
		TotalIdentifiedValue: status.TotalIdentifiedValue,
		TotalSaleValue:       status.TotalSaleValue,
		IdentifiedCount:      status.IdentifiedCount,
		Violations:           status.Violations,
		OccurredAt:           s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.TopicRuleStatusEvaluated, exchangeID, event); err != nil {
		s.logger.Error("exchange.publish_failed", "exchange_id", exchangeID, "error", err)
	}

	return status, nil
}

// CanAddProperty checks whether one more property of the given value may be
// identified for the exchange.
func (s *Service) CanAddProperty(ctx context.Context, exchangeID string, value decimal.Decimal) (models.AddPropertyCheck, error) {
	entries, properties, err := s.snapshot(ctx, exchangeID)
	if err != nil {
		return models.AddPropertyCheck{}, err
	}

	saleValue := ledger.ExchangeFinancials(entries, exchangeID).TotalSalePropertyValue
	return rules.CanAddProperty(properties, value, saleValue), nil
}

// TaxAccountYTD aggregates every exchange of a tax account between start and
// end, both days included.
func (s *Service) TaxAccountYTD(ctx context.Context, taxAccountID string, start, end time.Time) (models.YTDMetrics, error) {
	if strings.TrimSpace(taxAccountID) == "" {
		return models.YTDMetrics{}, models.ErrTaxAccountIDRequired
	}
	if start.After(end) {
		return models.YTDMetrics{}, models.ErrInvalidDateRange
	}

	exchangeIDs, err := s.accounts.GetExchangeIDs(ctx, taxAccountID)
	if err != nil {
		return models.YTDMetrics{}, fmt.Errorf("could not get exchanges for tax account %s: %w", taxAccountID, err)
	}

	var entries []models.LedgerEntry
	if len(exchangeIDs) > 0 {
		entries, err = s.entries.GetEntriesForExchanges(ctx, exchangeIDs, start, end)
		if err != nil {
			return models.YTDMetrics{}, fmt.Errorf("could not get ledger entries: %w", err)
		}
	}

	return ledger.YearToDateMetrics(entries, exchangeIDs, start, end), nil
}

// RecordEntry validates and appends a ledger entry, assigning its id.
func (s *Service) RecordEntry(ctx context.Context, entry models.LedgerEntry) (models.LedgerEntry, error) {
	if !entry.EntryType.Valid() {
		return models.LedgerEntry{}, fmt.Errorf("%w: %q", models.ErrInvalidEntryType, entry.EntryType)
	}
	if entry.Credit.IsNegative() || entry.Debit.IsNegative() {
		return models.LedgerEntry{}, models.ErrInvalidAmount
	}

	now := s.now().UTC()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Date.IsZero() {
		entry.Date = now
	}
	entry.CreatedAt = now

	if err := s.entries.SaveEntry(ctx, entry); err != nil {
		return models.LedgerEntry{}, fmt.Errorf("could not save ledger entry: %w", err)
	}

	s.logger.Info("ledger.entry_recorded",
		"entry_id", entry.ID,
		"entry_type", string(entry.EntryType),
		"credit", entry.Credit.String(),
		"debit", entry.Debit.String(),
	)
	return entry, nil
}

func (s *Service) exchangeEntries(ctx context.Context, exchangeID string) ([]models.LedgerEntry, error) {
	if strings.TrimSpace(exchangeID) == "" {
		return nil, models.ErrExchangeIDRequired
	}

	entries, err := s.entries.GetEntriesByExchange(ctx, exchangeID)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger entries: %w", err)
	}
	return entries, nil
}

// snapshot loads the exchange's entries and identified properties concurrently.
func (s *Service) snapshot(ctx context.Context, exchangeID string) ([]models.LedgerEntry, []models.IdentifiedProperty, error) {
	if strings.TrimSpace(exchangeID) == "" {
		return nil, nil, models.ErrExchangeIDRequired
	}

	var (
		entries    []models.LedgerEntry
		properties []models.IdentifiedProperty
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.exchangeEntries(gctx, exchangeID)
		return err
	})
	g.Go(func() error {
		var err error
		properties, err = s.properties.GetIdentifiedProperties(gctx, exchangeID)
		if err != nil {
			return fmt.Errorf("could not get identified properties: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return entries, properties, nil
}
