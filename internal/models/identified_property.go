package models

import "github.com/shopspring/decimal"

// PropertyStatus tracks an identified property through the exchange.
// Cancellation is a status; properties are never deleted.
type PropertyStatus string

const (
	PropertyStatusIdentified    PropertyStatus = "identified"
	PropertyStatusUnderContract PropertyStatus = "under_contract"
	PropertyStatusAcquired      PropertyStatus = "acquired"
	PropertyStatusCancelled     PropertyStatus = "cancelled"
)

// PropertyImprovement is a planned improvement that adds to a property's value.
type PropertyImprovement struct {
	ID          string              `json:"id"`
	Value       decimal.NullDecimal `json:"value"`
	Description string              `json:"description,omitempty"`
}

// IdentifiedProperty is a candidate replacement property for one exchange.
type IdentifiedProperty struct {
	ID           string                `json:"id"`
	ExchangeID   string                `json:"exchange_id"`
	Address      string                `json:"address,omitempty"`
	Value        decimal.NullDecimal   `json:"value"`
	Status       PropertyStatus        `json:"status"`
	Improvements []PropertyImprovement `json:"improvements"`
}

// EffectiveValue is the property value plus all improvement values.
// Missing values count as zero.
func (p IdentifiedProperty) EffectiveValue() decimal.Decimal {
	total := orZero(p.Value)
	for _, imp := range p.Improvements {
		total = total.Add(orZero(imp.Value))
	}
	return total
}

// Cancelled reports whether the identification was withdrawn.
func (p IdentifiedProperty) Cancelled() bool {
	return p.Status == PropertyStatusCancelled
}

func orZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
