package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dvillegas/mercadia-backend/pkg/db/models"
)

// Repository reads the product catalog. The reporting core only needs the
// ownership lookup; catalog writes live in another subsystem.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// OwnedProductIDs returns every product ID the seller owns. A seller without
// products yields an empty slice, not an error.
func (r *Repository) OwnedProductIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("seller_id = ?", sellerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
