// Package rules classifies identified replacement properties against the IRS
// like-kind exchange identification rules.
package rules

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// MaxPropertiesThreePropertyRule is the largest count the 3-property rule allows.
const MaxPropertiesThreePropertyRule = 3

var (
	// identified value may not exceed this multiple of the sale value under the 200% rule
	maxIdentifiedMultiple = decimal.NewFromInt(2)
	// share of identified value that must be acquired under the 95% rule
	requiredAcquisitionShare = decimal.RequireFromString("0.95")
	// usage of the 200% limit at which a warning is raised
	usageWarningThreshold = decimal.RequireFromString("0.90")

	hundred = decimal.NewFromInt(100)
)

// EvaluateRule decides which identification rule is active for the given
// properties and whether the exchange complies with it.
//
// Cancelled properties are left out of both the count and the total value.
// The 3-property rule applies whenever three or fewer properties are
// identified, regardless of their value.
func EvaluateRule(properties []models.IdentifiedProperty, totalSaleValue decimal.Decimal) models.ExchangeRuleStatus {
	count, totalIdentified := identifiedTotals(properties)

	status := models.ExchangeRuleStatus{
		ActiveRule:           models.RuleNone,
		IsCompliant:          true,
		TotalIdentifiedValue: totalIdentified,
		TotalSaleValue:       totalSaleValue,
		IdentifiedCount:      count,
		Violations:           []string{},
		Warnings:             []string{},
	}

	switch {
	case count == 0:
		return status

	case count <= MaxPropertiesThreePropertyRule:
		status.ActiveRule = models.RuleThreeProperty
		if count == MaxPropertiesThreePropertyRule {
			status.Warnings = append(status.Warnings,
				"You have identified 3 properties, the maximum under the 3-property rule. Identifying a 4th property will switch this exchange to the 200% rule.")
		}
		return status
	}

	maxAllowed := MaxIdentifiedValue(totalSaleValue)

	if totalIdentified.LessThanOrEqual(maxAllowed) {
		status.ActiveRule = models.RuleTwoHundredPct
		// a zero limit has no meaningful usage ratio
		if !maxAllowed.IsZero() {
			usage := totalIdentified.Div(maxAllowed)
			if usage.GreaterThanOrEqual(usageWarningThreshold) {
				status.Warnings = append(status.Warnings, fmt.Sprintf(
					"You are using %s%% of the 200%% rule limit. Remaining capacity: %s.",
					usage.Mul(hundred).StringFixed(1), FormatUSD(maxAllowed.Sub(totalIdentified))))
			}
		}
		return status
	}

	status.ActiveRule = models.RuleNinetyFivePct
	status.IsCompliant = false
	status.Violations = append(status.Violations,
		fmt.Sprintf("Total identified value (%s) exceeds 200%% of the sale value (%s).",
			FormatUSD(totalIdentified), FormatUSD(maxAllowed)),
		fmt.Sprintf("Under the 95%% rule you must acquire at least %s (95%% of the total identified value).",
			FormatUSD(RequiredAcquisition(totalIdentified))),
	)
	status.Warnings = append(status.Warnings,
		"Consider reducing the identified properties so the total falls back within the 200% rule limit.")

	return status
}

// CanAddProperty checks, before a property is persisted, whether identifying
// one more property of newPropertyValue keeps the exchange compliant.
//
// The check only looks ahead when the exchange already holds three or more
// properties; below that, adding is always allowed.
func CanAddProperty(currentProperties []models.IdentifiedProperty, newPropertyValue, totalSaleValue decimal.Decimal) models.AddPropertyCheck {
	count, currentTotal := identifiedTotals(currentProperties)
	maxAllowed := MaxIdentifiedValue(totalSaleValue)
	exceeds := currentTotal.Add(newPropertyValue).GreaterThan(maxAllowed)

	switch {
	case count == MaxPropertiesThreePropertyRule:
		if exceeds {
			return models.AddPropertyCheck{
				CanAdd: false,
				Reason: fmt.Sprintf("Adding a 4th property would exceed the 200%% rule limit of %s.", FormatUSD(maxAllowed)),
			}
		}
		return models.AddPropertyCheck{
			CanAdd: true,
			Reason: "Adding a 4th property will activate the 200% rule.",
		}

	case count > MaxPropertiesThreePropertyRule:
		if exceeds {
			return models.AddPropertyCheck{
				CanAdd: false,
				Reason: fmt.Sprintf("Adding this property would exceed the 200%% rule limit of %s and trigger the restrictive 95%% rule.", FormatUSD(maxAllowed)),
			}
		}
	}

	return models.AddPropertyCheck{CanAdd: true}
}

// MaxIdentifiedValue is the 200% rule ceiling for a sale value.
func MaxIdentifiedValue(totalSaleValue decimal.Decimal) decimal.Decimal {
	return totalSaleValue.Mul(maxIdentifiedMultiple)
}

// RequiredAcquisition is the minimum value that must be acquired under the
// 95% rule.
func RequiredAcquisition(totalIdentifiedValue decimal.Decimal) decimal.Decimal {
	return totalIdentifiedValue.Mul(requiredAcquisitionShare)
}

// FormatUSD renders an amount as US dollars, e.g. $50,000.00.
func FormatUSD(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}

func identifiedTotals(properties []models.IdentifiedProperty) (int, decimal.Decimal) {
	count := 0
	total := decimal.Zero
	for _, p := range properties {
		if p.Cancelled() {
			continue
		}
		count++
		total = total.Add(p.EffectiveValue())
	}
	return count, total
}
