package reports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSource reads per-order attribution rows from the order pool. The
// implementation must group line items by order before returning, one share
// per order that has at least one matching line item.
type OrderSource interface {
	SellerOrderShares(ctx context.Context, productIDs []uuid.UUID, w Window) ([]OrderShare, error)
	RecentSellerOrders(ctx context.Context, productIDs []uuid.UUID, limit int) ([]RecentOrder, error)
}

// ExpenseSource reads seller expense aggregates.
type ExpenseSource interface {
	TotalInWindow(ctx context.Context, sellerID uuid.UUID, w Window) (decimal.Decimal, error)
	TotalsByCategory(ctx context.Context, sellerID uuid.UUID) ([]CategoryTotal, error)
}

// ProductSource resolves the set of product IDs a seller owns.
type ProductSource interface {
	OwnedProductIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error)
}

// IdentitySource verifies whether an identity is flagged as a seller.
type IdentitySource interface {
	IsSeller(ctx context.Context, sellerID uuid.UUID) (bool, error)
}
