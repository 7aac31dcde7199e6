package orders

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dvillegas/mercadia-backend/pkg/db/models"
	"github.com/dvillegas/mercadia-backend/pkg/enums"
)

func mustCreateTestUser(t *testing.T, tx *gorm.DB, role enums.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Email:        fmt.Sprintf("mc_test_%s@example.com", uuid.NewString()),
		PasswordHash: "hash",
		FirstName:    "Repo",
		LastName:     "Tester",
		Role:         role,
		IsActive:     true,
	}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, sellerID uuid.UUID, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
		Title:    "Test Product",
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

type testLineItem struct {
	productID uuid.UUID
	qty       int
	unitPrice string
}

func mustCreateTestOrder(t *testing.T, tx *gorm.DB, buyerID uuid.UUID, orderedAt time.Time, items ...testLineItem) *models.Order {
	t.Helper()

	total := decimal.Zero
	lineItems := make([]models.OrderLineItem, 0, len(items))
	for _, item := range items {
		price := decimal.RequireFromString(item.unitPrice)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.qty))))
		lineItems = append(lineItems, models.OrderLineItem{
			ID:        uuid.New(),
			ProductID: item.productID,
			Qty:       item.qty,
			UnitPrice: price,
		})
	}

	order := &models.Order{
		ID:         uuid.New(),
		BuyerID:    buyerID,
		OrderedAt:  orderedAt,
		TotalPrice: total,
		Status:     enums.OrderStatusPaid,
		Items:      lineItems,
	}
	if err := tx.Create(order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}
