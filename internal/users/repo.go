package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dvillegas/mercadia-backend/pkg/db/models"
	"github.com/dvillegas/mercadia-backend/pkg/enums"
)

// Repository reads identities. Account management is another subsystem's job.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a users repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a single user.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// IsSeller reports whether the identity exists and is flagged as an active
// seller. An unknown identity is simply not a seller, not a lookup failure.
func (r *Repository) IsSeller(ctx context.Context, sellerID uuid.UUID) (bool, error) {
	user, err := r.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsActive && user.Role == enums.UserRoleSeller, nil
}
