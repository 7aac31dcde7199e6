package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dvillegas/mercadia-backend/pkg/enums"
)

// Order is a buyer checkout spanning one or more sellers. Line items are an
// immutable snapshot; only status fields mutate after creation and those
// belong to the order subsystem.
type Order struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BuyerID    uuid.UUID         `gorm:"column:buyer_id;type:uuid;not null;index"`
	OrderedAt  time.Time         `gorm:"column:ordered_at;not null;index"`
	TotalPrice decimal.Decimal   `gorm:"column:total_price;type:numeric(12,2);not null"`
	Status     enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Items      []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Buyer      *User             `gorm:"foreignKey:BuyerID"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
