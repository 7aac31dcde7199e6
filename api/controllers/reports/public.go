package reports

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dvillegas/mercadia-backend/api/responses"
	"github.com/dvillegas/mercadia-backend/api/validators"
	"github.com/dvillegas/mercadia-backend/internal/reports"
	"github.com/dvillegas/mercadia-backend/pkg/logger"
)

// PublicSellerReport serves the storefront view of a seller's performance.
// It carries no expense or profit data.
func PublicSellerReport(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sellerID, err := validators.ParseSellerID(chi.URLParam(r, "sellerId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithSellerID(ctx, sellerID.String())
		}

		report, err := service.PublicReport(ctx, sellerID, timeNowUTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
