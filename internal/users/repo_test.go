package users

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

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

func mustCreateUser(t *testing.T, tx *gorm.DB, role enums.UserRole, active bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Email:        fmt.Sprintf("mc_test_%s@example.com", uuid.NewString()),
		PasswordHash: "hash",
		FirstName:    "Repo",
		LastName:     "Tester",
		Role:         role,
		IsActive:     active,
	}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestIsSeller(t *testing.T) {
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

	seller := mustCreateUser(t, tx, enums.UserRoleSeller, true)
	buyer := mustCreateUser(t, tx, enums.UserRoleBuyer, true)
	inactive := mustCreateUser(t, tx, enums.UserRoleSeller, false)

	if ok, err := repo.IsSeller(ctx, seller.ID); err != nil || !ok {
		t.Fatalf("active seller: got %v, %v", ok, err)
	}
	if ok, err := repo.IsSeller(ctx, buyer.ID); err != nil || ok {
		t.Fatalf("buyer is not a seller: got %v, %v", ok, err)
	}
	if ok, err := repo.IsSeller(ctx, inactive.ID); err != nil || ok {
		t.Fatalf("inactive seller: got %v, %v", ok, err)
	}
}

func TestIsSellerUnknownIdentity(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)

	ok, err := repo.IsSeller(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unknown identity is not a lookup failure: %v", err)
	}
	if ok {
		t.Fatal("unknown identity reported as seller")
	}
}
