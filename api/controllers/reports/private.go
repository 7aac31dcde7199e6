package reports

import (
	"net/http"
	"time"

	"github.com/dvillegas/mercadia-backend/api/middleware"
	"github.com/dvillegas/mercadia-backend/api/responses"
	"github.com/dvillegas/mercadia-backend/api/validators"
	"github.com/dvillegas/mercadia-backend/internal/reports"
	pkgerrors "github.com/dvillegas/mercadia-backend/pkg/errors"
	"github.com/dvillegas/mercadia-backend/pkg/logger"
)

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// SellerDashboard serves the owner-only financial report for the
// authenticated seller.
func SellerDashboard(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rawID := middleware.UserIDFromContext(ctx)
		if rawID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		sellerID, err := validators.ParseSellerID(rawID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithSellerID(ctx, sellerID.String())
		}

		report, err := service.PrivateReport(ctx, sellerID, timeNowUTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
