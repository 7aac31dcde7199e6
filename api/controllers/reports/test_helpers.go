package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dvillegas/mercadia-backend/internal/reports"
)

type testReportsService struct {
	lastSellerID uuid.UUID
	lastNow      time.Time
	private      *reports.PrivateReport
	public       *reports.PublicReport
	err          error
}

func (s *testReportsService) PrivateReport(_ context.Context, sellerID uuid.UUID, now time.Time) (*reports.PrivateReport, error) {
	s.lastSellerID = sellerID
	s.lastNow = now
	if s.err != nil {
		return nil, s.err
	}
	if s.private == nil {
		s.private = &reports.PrivateReport{
			RecentOrders:       []reports.RecentOrder{},
			SalesTrend:         []reports.TrendBucket{},
			ExpensesByCategory: []reports.CategoryTotal{},
		}
	}
	return s.private, nil
}

func (s *testReportsService) PublicReport(_ context.Context, sellerID uuid.UUID, now time.Time) (*reports.PublicReport, error) {
	s.lastSellerID = sellerID
	s.lastNow = now
	if s.err != nil {
		return nil, s.err
	}
	if s.public == nil {
		s.public = &reports.PublicReport{SalesTrend: []reports.TrendBucket{}}
	}
	return s.public, nil
}

func (s *testReportsService) called() bool {
	return s.lastSellerID != uuid.Nil
}

func testOverview(sales string, orders int64) reports.Overview {
	return reports.Overview{
		TotalSales:  decimal.RequireFromString(sales),
		TotalOrders: orders,
	}
}
