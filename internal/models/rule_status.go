package models

import "github.com/shopspring/decimal"

// ExchangeRule is the IRS identification rule in force for an exchange.
type ExchangeRule string

const (
	RuleNone          ExchangeRule = "none"
	RuleThreeProperty ExchangeRule = "3_property"
	RuleTwoHundredPct ExchangeRule = "200_percent"
	RuleNinetyFivePct ExchangeRule = "95_percent"
)

// ExchangeRuleStatus is the result of evaluating identified properties.
// It is recomputed on every evaluation and never stored.
type ExchangeRuleStatus struct {
	ActiveRule           ExchangeRule    `json:"active_rule"`
	IsCompliant          bool            `json:"is_compliant"`
	TotalIdentifiedValue decimal.Decimal `json:"total_identified_value"`
	TotalSaleValue       decimal.Decimal `json:"total_sale_value"`
	IdentifiedCount      int             `json:"identified_count"`
	Violations           []string        `json:"violations"`
	Warnings             []string        `json:"warnings"`
}

// AddPropertyCheck answers whether one more property may be identified.
type AddPropertyCheck struct {
	CanAdd bool   `json:"can_add"`
	Reason string `json:"reason,omitempty"`
}
