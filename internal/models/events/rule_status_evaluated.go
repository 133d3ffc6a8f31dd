package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TopicRuleStatusEvaluated   = "exchange_rule_evaluated"
	TopicSpousalAccountCreated = "spousal_account_created"
)

type RuleStatusEvaluated struct {
	ExchangeID           string          `json:"exchange_id"`
	ActiveRule           string          `json:"active_rule"`
	IsCompliant          bool            `json:"is_compliant"`
	TotalIdentifiedValue decimal.Decimal `json:"total_identified_value"`
	TotalSaleValue       decimal.Decimal `json:"total_sale_value"`
	IdentifiedCount      int             `json:"identified_count"`
	Violations           []string        `json:"violations"`
	OccurredAt           time.Time       `json:"occurred_at"`
}

type SpousalAccountCreated struct {
	TaxAccountID     string    `json:"tax_account_id"`
	AccountNumber    string    `json:"account_number"`
	PrimaryProfileID string    `json:"primary_profile_id"`
	SpouseProfileID  string    `json:"spouse_profile_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}
