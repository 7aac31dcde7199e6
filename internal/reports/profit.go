package reports

import "github.com/shopspring/decimal"

// Profit derives profit for one window. May be negative.
func Profit(sales, expenses decimal.Decimal) decimal.Decimal {
	return sales.Sub(expenses)
}
