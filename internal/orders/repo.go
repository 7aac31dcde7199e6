package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dvillegas/mercadia-backend/internal/reports"
	"github.com/dvillegas/mercadia-backend/pkg/db/models"
)

// Repository reads the shared multi-seller order pool. Reporting never
// mutates orders.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type shareRow struct {
	OrderID   uuid.UUID       `gorm:"column:order_id"`
	OrderedAt time.Time       `gorm:"column:ordered_at"`
	Amount    decimal.Decimal `gorm:"column:amount"`
}

// SellerOrderShares computes one share per order that contains at least one of
// the seller's products: the sum of qty x unit_price over only those line
// items. Grouping by order here is what keeps multi-seller orders from being
// double counted when the caller sums across orders.
func (r *Repository) SellerOrderShares(ctx context.Context, productIDs []uuid.UUID, w reports.Window) ([]reports.OrderShare, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	q := r.db.WithContext(ctx).
		Table("order_line_items AS li").
		Select("li.order_id AS order_id, o.ordered_at AS ordered_at, SUM(li.qty * li.unit_price) AS amount").
		Joins("JOIN orders o ON o.id = li.order_id").
		Where("li.product_id IN ?", productIDs)
	if !w.Start.IsZero() {
		q = q.Where("o.ordered_at >= ?", w.Start)
	}
	if !w.End.IsZero() {
		q = q.Where("o.ordered_at < ?", w.End)
	}

	var rows []shareRow
	err := q.Group("li.order_id, o.ordered_at").
		Order("o.ordered_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	shares := make([]reports.OrderShare, 0, len(rows))
	for _, row := range rows {
		shares = append(shares, reports.OrderShare{
			OrderID:   row.OrderID,
			OrderedAt: row.OrderedAt,
			Amount:    row.Amount,
		})
	}
	return shares, nil
}

// RecentSellerOrders returns the newest orders containing at least one of the
// seller's products, buyer populated, with the seller's share computed from
// only the matching line items.
func (r *Repository) RecentSellerOrders(ctx context.Context, productIDs []uuid.UUID, limit int) ([]reports.RecentOrder, error) {
	if len(productIDs) == 0 || limit <= 0 {
		return []reports.RecentOrder{}, nil
	}

	matching := r.db.
		Table("order_line_items").
		Select("DISTINCT order_id").
		Where("product_id IN ?", productIDs)

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", "product_id IN ?", productIDs).
		Preload("Buyer").
		Where("id IN (?)", matching).
		Order("ordered_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	recent := make([]reports.RecentOrder, 0, len(orders))
	for _, order := range orders {
		amount := decimal.Zero
		for _, item := range order.Items {
			amount = amount.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Qty))))
		}

		var buyer reports.RecentOrderBuyer
		if order.Buyer != nil {
			buyer = reports.RecentOrderBuyer{
				Name:  order.Buyer.FullName(),
				Email: order.Buyer.Email,
			}
		}

		recent = append(recent, reports.RecentOrder{
			OrderID:   order.ID,
			OrderedAt: order.OrderedAt,
			Amount:    amount,
			Buyer:     buyer,
		})
	}
	return recent, nil
}
