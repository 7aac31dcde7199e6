package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dvillegas/mercadia-backend/pkg/enums"
)

// Window bounds a [Start, End) time filter. Zero fields mean unbounded.
type Window struct {
	Start time.Time
	End   time.Time
}

// AllTime is the unbounded window used for overview aggregates.
var AllTime = Window{}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

// OrderShare is one order's monetary share for a single seller: the sum of
// qty x unit price over only that seller's line items. An order with no
// matching items never produces a share.
type OrderShare struct {
	OrderID   uuid.UUID
	OrderedAt time.Time
	Amount    decimal.Decimal
}

// Overview holds the all-time aggregate figures.
type Overview struct {
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int64           `json:"totalOrders"`
}

// PeriodSummary holds windowed sales, order count, expenses, and derived profit.
type PeriodSummary struct {
	Sales    decimal.Decimal `json:"sales"`
	Orders   int64           `json:"orders"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// CurrentPeriod groups the weekly and monthly summaries.
type CurrentPeriod struct {
	Weekly  PeriodSummary `json:"weekly"`
	Monthly PeriodSummary `json:"monthly"`
}

// TrendBucket is one calendar month of the sales trend series.
type TrendBucket struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Sales  decimal.Decimal `json:"sales"`
	Orders int64           `json:"orders"`
}

// CategoryTotal is one row of the expenses-by-category breakdown.
type CategoryTotal struct {
	Category enums.ExpenseCategory `json:"category"`
	Total    decimal.Decimal       `json:"total"`
}

// RecentOrderBuyer carries the buyer contact details shown on recent orders.
type RecentOrderBuyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecentOrder is one of the newest orders containing the seller's products.
// Amount is the seller's share, not the order total.
type RecentOrder struct {
	OrderID   uuid.UUID        `json:"orderId"`
	OrderedAt time.Time        `json:"orderedAt"`
	Amount    decimal.Decimal  `json:"amount"`
	Buyer     RecentOrderBuyer `json:"buyer"`
}

// PrivateReport is the owner-visible dashboard, expenses and profit included.
type PrivateReport struct {
	Overview           Overview        `json:"overview"`
	CurrentPeriod      CurrentPeriod   `json:"currentPeriod"`
	RecentOrders       []RecentOrder   `json:"recentOrders"`
	SalesTrend         []TrendBucket   `json:"salesTrend"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
}

// PublicReport is the anyone-visible view. It deliberately has no expense or
// profit fields so serialization cannot leak them.
type PublicReport struct {
	Overview   Overview      `json:"overview"`
	SalesTrend []TrendBucket `json:"salesTrend"`
}
