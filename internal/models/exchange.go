package models

import "github.com/shopspring/decimal"

// ExchangeFinancials summarises one exchange's ledger.
type ExchangeFinancials struct {
	TotalSalePropertyValue   decimal.Decimal `json:"total_sale_property_value"`
	TotalReplacementProperty decimal.Decimal `json:"total_replacement_property"`
	// ValueRemaining is negative when replacement spend exceeded proceeds.
	ValueRemaining decimal.Decimal `json:"value_remaining"`
}

// YTDMetrics aggregates a set of exchanges over a date range.
type YTDMetrics struct {
	TotalValuePropertySold         decimal.Decimal `json:"total_value_property_sold"`
	TotalAmountReceivedToQI        decimal.Decimal `json:"total_amount_received_to_qi"`
	TotalExchangeableValueAcquired decimal.Decimal `json:"total_exchangeable_value_acquired"`
	TotalFundsSentFromExchange     decimal.Decimal `json:"total_funds_sent_from_exchange"`
	TotalFees                      decimal.Decimal `json:"total_fees"`
	FundsReturnedToExchanger       decimal.Decimal `json:"funds_returned_to_exchanger"`
}
