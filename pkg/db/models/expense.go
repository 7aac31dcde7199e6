package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dvillegas/mercadia-backend/pkg/enums"
)

// Expense is a cost a seller recorded against their shop. Immutable once
// created; the expense-tracking subsystem owns writes.
type Expense struct {
	ID         uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID   uuid.UUID             `gorm:"column:seller_id;type:uuid;not null;index"`
	Amount     decimal.Decimal       `gorm:"column:amount;type:numeric(12,2);not null"`
	Category   enums.ExpenseCategory `gorm:"column:category;type:text;not null"`
	Note       *string               `gorm:"column:note"`
	IncurredOn time.Time             `gorm:"column:incurred_on;not null;index"`
	CreatedAt  time.Time             `gorm:"column:created_at;autoCreateTime"`
}
