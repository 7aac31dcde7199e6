package expenses

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dvillegas/mercadia-backend/internal/reports"
	"github.com/dvillegas/mercadia-backend/pkg/db/models"
	"github.com/dvillegas/mercadia-backend/pkg/enums"
)

// Repository reads seller expense aggregates. Expense records are written by
// the expense-tracking subsystem and are immutable here.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an expenses repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TotalInWindow sums the seller's expenses inside the window. No expenses
// means a zero total, never an error.
func (r *Repository) TotalInWindow(ctx context.Context, sellerID uuid.UUID, w reports.Window) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	q := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("seller_id = ?", sellerID)
	if !w.Start.IsZero() {
		q = q.Where("incurred_on >= ?", w.Start)
	}
	if !w.End.IsZero() {
		q = q.Where("incurred_on < ?", w.End)
	}
	if err := q.Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// TotalsByCategory returns the all-time expense breakdown, largest category
// first. The breakdown view is intentionally not window-filtered.
func (r *Repository) TotalsByCategory(ctx context.Context, sellerID uuid.UUID) ([]reports.CategoryTotal, error) {
	var rows []struct {
		Category enums.ExpenseCategory `gorm:"column:category"`
		Total    decimal.Decimal       `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("seller_id = ?", sellerID).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]reports.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, reports.CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
		})
	}
	return totals, nil
}
