package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models/events"
)

// DefaultMaxAttempts bounds retries after an account number collision.
const DefaultMaxAttempts = 3

// SpousalAccountRequest carries the two profiles of a joint account. Profile
// lookup happens upstream; only the last names are needed for numbering.
type SpousalAccountRequest struct {
	PrimaryProfileID string `json:"primary_profile_id"`
	SpouseProfileID  string `json:"spouse_profile_id"`
	PrimaryLastName  string `json:"primary_last_name"`
	SpouseLastName   string `json:"spouse_last_name"`
}

// Provisioner creates joint tax accounts with generated account numbers.
type Provisioner struct {
	store       interfaces.TaxAccountStore
	publisher   interfaces.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
	maxAttempts int
}

func NewProvisioner(store interfaces.TaxAccountStore, publisher interfaces.EventPublisher, logger *slog.Logger) *Provisioner {
	return &Provisioner{
		store:       store,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
	}
}

// CreateSpousalAccount provisions a joint account. The store serializes the
// spousal count with the insert; when the number still collides, the whole
// count-and-insert is retried up to the attempt limit.
func (p *Provisioner) CreateSpousalAccount(ctx context.Context, req SpousalAccountRequest) (models.TaxAccount, error) {
	if strings.TrimSpace(req.PrimaryProfileID) == "" || strings.TrimSpace(req.SpouseProfileID) == "" {
		return models.TaxAccount{}, models.ErrProfileIDRequired
	}

	build := func(existingSpousal int) (models.TaxAccount, error) {
		spouse := req.SpouseProfileID
		return models.TaxAccount{
			ID:               uuid.New().String(),
			AccountNumber:    SpousalAccountNumber(req.PrimaryLastName, req.SpouseLastName, existingSpousal),
			PrimaryProfileID: req.PrimaryProfileID,
			SpouseProfileID:  &spouse,
			IsSpousal:        true,
			CreatedAt:        p.now().UTC(),
		}, nil
	}

	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		account, err := p.store.CreateSpousalAccount(ctx, build)
		if errors.Is(err, models.ErrAccountNumberTaken) {
			lastErr = err
			p.logger.Warn("spousal_account.number_collision", "attempt", attempt)
			continue
		}
		if err != nil {
			return models.TaxAccount{}, fmt.Errorf("could not create spousal account: %w", err)
		}

		p.logger.Info("spousal_account.created", "tax_account_id", account.ID, "account_number", account.AccountNumber)
		p.publishCreated(ctx, account)
		return account, nil
	}

	return models.TaxAccount{}, fmt.Errorf("could not create spousal account after %d attempts: %w", p.maxAttempts, lastErr)
}

// publishing is best effort; the account already exists
func (p *Provisioner) publishCreated(ctx context.Context, account models.TaxAccount) {
	event := events.SpousalAccountCreated{
		TaxAccountID:     account.ID,
		AccountNumber:    account.AccountNumber,
		PrimaryProfileID: account.PrimaryProfileID,
		OccurredAt:       account.CreatedAt,
	}
	if account.SpouseProfileID != nil {
		event.SpouseProfileID = *account.SpouseProfileID
	}

	if err := p.publisher.Publish(ctx, events.TopicSpousalAccountCreated, account.ID, event); err != nil {
		p.logger.Error("spousal_account.publish_failed", "tax_account_id", account.ID, "error", err)
	}
}
