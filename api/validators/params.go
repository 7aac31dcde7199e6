package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	pkgerrors "github.com/dvillegas/mercadia-backend/pkg/errors"
)

var validate = validator.New()

// ParseSellerID validates a seller identifier taken from a URL path or token
// claim and returns its parsed form.
func ParseSellerID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, "required,uuid4"); err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid seller id").
			WithDetails(map[string]any{"field": "sellerId"})
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid seller id").
			WithDetails(map[string]any{"field": "sellerId"})
	}
	return id, nil
}
