package expenses

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dvillegas/mercadia-backend/internal/reports"
	"github.com/dvillegas/mercadia-backend/pkg/db/models"
	"github.com/dvillegas/mercadia-backend/pkg/enums"
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

func mustCreateTestExpense(t *testing.T, tx *gorm.DB, sellerID uuid.UUID, amount string, category enums.ExpenseCategory, incurredOn time.Time) {
	t.Helper()
	expense := &models.Expense{
		ID:         uuid.New(),
		SellerID:   sellerID,
		Amount:     decimal.RequireFromString(amount),
		Category:   category,
		IncurredOn: incurredOn,
	}
	if err := tx.Create(expense).Error; err != nil {
		t.Fatalf("create expense: %v", err)
	}
}

func TestTotalInWindow(t *testing.T) {
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

	mustCreateTestExpense(t, tx, sellerID, "50", enums.ExpenseCategoryMaterials, time.Date(2025, 3, 17, 8, 0, 0, 0, time.UTC))
	mustCreateTestExpense(t, tx, sellerID, "25.50", enums.ExpenseCategoryShipping, time.Date(2025, 3, 18, 8, 0, 0, 0, time.UTC))
	mustCreateTestExpense(t, tx, sellerID, "40", enums.ExpenseCategoryFees, time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC))
	mustCreateTestExpense(t, tx, otherSellerID, "999", enums.ExpenseCategoryOther, time.Date(2025, 3, 18, 8, 0, 0, 0, time.UTC))

	window := reports.Window{
		Start: time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 19, 15, 0, 0, 0, time.UTC),
	}
	total, err := repo.TotalInWindow(ctx, sellerID, window)
	if err != nil {
		t.Fatalf("total in window: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("75.50")) {
		t.Fatalf("windowed total: got %s", total)
	}

	allTime, err := repo.TotalInWindow(ctx, sellerID, reports.AllTime)
	if err != nil {
		t.Fatalf("all-time total: %v", err)
	}
	if !allTime.Equal(decimal.RequireFromString("115.50")) {
		t.Fatalf("all-time total: got %s", allTime)
	}
}

func TestTotalInWindowNoExpenses(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)

	total, err := repo.TotalInWindow(context.Background(), uuid.New(), reports.AllTime)
	if err != nil {
		t.Fatalf("total in window: %v", err)
	}
	if !total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", total)
	}
}

func TestTotalsByCategory(t *testing.T) {
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

	mustCreateTestExpense(t, tx, sellerID, "60", enums.ExpenseCategoryMaterials, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	mustCreateTestExpense(t, tx, sellerID, "30", enums.ExpenseCategoryMaterials, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))
	mustCreateTestExpense(t, tx, sellerID, "45", enums.ExpenseCategoryShipping, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))

	totals, err := repo.TotalsByCategory(ctx, sellerID)
	if err != nil {
		t.Fatalf("totals by category: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals[0].Category != enums.ExpenseCategoryMaterials || !totals[0].Total.Equal(decimal.RequireFromString("90")) {
		t.Fatalf("largest category first: got %+v", totals[0])
	}
	if totals[1].Category != enums.ExpenseCategoryShipping || !totals[1].Total.Equal(decimal.RequireFromString("45")) {
		t.Fatalf("second category: got %+v", totals[1])
	}
}
