package products

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dvillegas/mercadia-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("MERCADIA_DB_DSN")
	if dsn == "" {
		t.Skip("MERCADIA_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func TestOwnedProductIDs(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()
	sellerID := uuid.New()
	otherSellerID := uuid.New()

	mine := &models.Product{ID: uuid.New(), SellerID: sellerID, Title: "Mine", Price: decimal.RequireFromString("10"), IsActive: true}
	theirs := &models.Product{ID: uuid.New(), SellerID: otherSellerID, Title: "Theirs", Price: decimal.RequireFromString("10"), IsActive: true}
	if err := tx.Create(mine).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	if err := tx.Create(theirs).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	ids, err := repo.OwnedProductIDs(ctx, sellerID)
	if err != nil {
		t.Fatalf("owned product ids: %v", err)
	}
	if len(ids) != 1 || ids[0] != mine.ID {
		t.Fatalf("ownership filter: got %v", ids)
	}
}

func TestOwnedProductIDsEmpty(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)

	ids, err := repo.OwnedProductIDs(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("owned product ids: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no products, got %v", ids)
	}
}
