package reports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dvillegas/mercadia-backend/internal/reports"
	pkgerrors "github.com/dvillegas/mercadia-backend/pkg/errors"
)

func publicTestRouter(service reports.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/public/sellers/{sellerId}/report", PublicSellerReport(service, testLogger()))
	return r
}

func TestPublicSellerReportSuccess(t *testing.T) {
	sellerID := uuid.New()
	service := &testReportsService{
		public: &reports.PublicReport{
			Overview:   testOverview("340", 3),
			SalesTrend: []reports.TrendBucket{},
		},
	}
	router := publicTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/public/sellers/"+sellerID.String()+"/report", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body)
	}
	if service.lastSellerID != sellerID {
		t.Fatalf("expected seller %s, got %s", sellerID, service.lastSellerID)
	}

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := envelope.Data["overview"]; !ok {
		t.Fatal("expected overview in payload")
	}
	for _, forbidden := range []string{"currentPeriod", "expensesByCategory", "recentOrders"} {
		if _, ok := envelope.Data[forbidden]; ok {
			t.Fatalf("public payload leaks %q", forbidden)
		}
	}
}

func TestPublicSellerReportInvalidID(t *testing.T) {
	service := &testReportsService{}
	router := publicTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/public/sellers/not-a-uuid/report", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if service.called() {
		t.Fatal("service should not be invoked for malformed id")
	}
}

func TestPublicSellerReportUnknownSeller(t *testing.T) {
	service := &testReportsService{err: pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")}
	router := publicTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/public/sellers/"+uuid.NewString()+"/report", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != "NOT_FOUND" {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
	if envelope.Error.Message != "seller not found" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}
