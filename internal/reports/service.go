package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/dvillegas/mercadia-backend/pkg/errors"
	"github.com/dvillegas/mercadia-backend/pkg/metrics"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultRecentLimit = 5

	kindPrivate = "private"
	kindPublic  = "public"
)

// Service computes seller financial reports out of the shared order pool.
type Service interface {
	// PrivateReport builds the owner-visible dashboard. The caller must have
	// already authenticated sellerID as the requesting seller.
	PrivateReport(ctx context.Context, sellerID uuid.UUID, now time.Time) (*PrivateReport, error)
	// PublicReport builds the anyone-visible view. It re-verifies that the
	// target identity is a seller and never touches expense data.
	PublicReport(ctx context.Context, sellerID uuid.UUID, now time.Time) (*PublicReport, error)
}

// ServiceParams groups dependencies for the reports service.
type ServiceParams struct {
	Orders   OrderSource
	Expenses ExpenseSource
	Products ProductSource
	Identity IdentitySource

	// Cache and Metrics are optional.
	Cache   *Cache
	Metrics *metrics.ReportMetrics

	Timeout     time.Duration
	RecentLimit int
}

type service struct {
	orders   OrderSource
	expenses ExpenseSource
	products ProductSource
	identity IdentitySource

	cache   *Cache
	metrics *metrics.ReportMetrics

	timeout     time.Duration
	recentLimit int
}

// NewService builds a reports service with the required data sources.
func NewService(params ServiceParams) (Service, error) {
	if params.Orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order source is required")
	}
	if params.Expenses == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expense source is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product source is required")
	}
	if params.Identity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "identity source is required")
	}
	if params.Timeout <= 0 {
		params.Timeout = defaultTimeout
	}
	if params.RecentLimit <= 0 {
		params.RecentLimit = defaultRecentLimit
	}
	return &service{
		orders:      params.Orders,
		expenses:    params.Expenses,
		products:    params.Products,
		identity:    params.Identity,
		cache:       params.Cache,
		metrics:     params.Metrics,
		timeout:     params.Timeout,
		recentLimit: params.RecentLimit,
	}, nil
}

func (s *service) PrivateReport(ctx context.Context, sellerID uuid.UUID, now time.Time) (*PrivateReport, error) {
	if sellerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller id is required")
	}

	started := time.Now()
	report, err := s.buildPrivate(ctx, sellerID, now)
	s.metrics.ObserveDuration(kindPrivate, time.Since(started))
	if err != nil {
		s.metrics.IncFailure(kindPrivate)
		return nil, err
	}
	s.metrics.IncSuccess(kindPrivate)
	return report, nil
}

func (s *service) PublicReport(ctx context.Context, sellerID uuid.UUID, now time.Time) (*PublicReport, error) {
	if sellerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller id is required")
	}

	if cached, ok := s.cache.GetPublic(ctx, sellerID); ok {
		return cached, nil
	}

	started := time.Now()
	report, err := s.buildPublic(ctx, sellerID, now)
	s.metrics.ObserveDuration(kindPublic, time.Since(started))
	if err != nil {
		s.metrics.IncFailure(kindPublic)
		return nil, err
	}
	s.metrics.IncSuccess(kindPublic)

	// Best effort: a cache write failure never fails the report.
	s.cache.SetPublic(ctx, sellerID, report)
	return report, nil
}

func (s *service) buildPrivate(ctx context.Context, sellerID uuid.UUID, now time.Time) (*PrivateReport, error) {
	windows := WindowsAt(now)

	productIDs, err := s.products.OwnedProductIDs(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve seller catalog")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		overviewShares []OrderShare
		weeklyShares   []OrderShare
		monthlyShares  []OrderShare
		trendShares    []OrderShare
		recentOrders   = []RecentOrder{}

		weeklyExpenses  = decimal.Zero
		monthlyExpenses = decimal.Zero
		byCategory      = []CategoryTotal{}
	)

	g, gctx := errgroup.WithContext(ctx)

	// A seller with no products has no attributable orders; skip the order
	// side entirely rather than issuing IN () queries.
	if len(productIDs) > 0 {
		g.Go(func() error {
			var err error
			if overviewShares, err = s.orders.SellerOrderShares(gctx, productIDs, AllTime); err != nil {
				return fmt.Errorf("overview sales: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if weeklyShares, err = s.orders.SellerOrderShares(gctx, productIDs, windows.Weekly()); err != nil {
				return fmt.Errorf("weekly sales: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if monthlyShares, err = s.orders.SellerOrderShares(gctx, productIDs, windows.Monthly()); err != nil {
				return fmt.Errorf("monthly sales: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if trendShares, err = s.orders.SellerOrderShares(gctx, productIDs, windows.Trend()); err != nil {
				return fmt.Errorf("sales trend: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if recentOrders, err = s.orders.RecentSellerOrders(gctx, productIDs, s.recentLimit); err != nil {
				return fmt.Errorf("recent orders: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		var err error
		if weeklyExpenses, err = s.expenses.TotalInWindow(gctx, sellerID, windows.Weekly()); err != nil {
			return fmt.Errorf("weekly expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if monthlyExpenses, err = s.expenses.TotalInWindow(gctx, sellerID, windows.Monthly()); err != nil {
			return fmt.Errorf("monthly expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if byCategory, err = s.expenses.TotalsByCategory(gctx, sellerID); err != nil {
			return fmt.Errorf("expenses by category: %w", err)
		}
		return nil
	})

	// Partial financial reports are worse than none: any failed
	// sub-aggregation cancels the siblings and fails the whole report.
	if err := g.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate seller report")
	}

	totalSales, totalOrders := ReduceShares(overviewShares)
	weeklySales, weeklyOrders := ReduceShares(weeklyShares)
	monthlySales, monthlyOrders := ReduceShares(monthlyShares)

	if recentOrders == nil {
		recentOrders = []RecentOrder{}
	}
	if byCategory == nil {
		byCategory = []CategoryTotal{}
	}

	return &PrivateReport{
		Overview: Overview{
			TotalSales:  totalSales,
			TotalOrders: totalOrders,
		},
		CurrentPeriod: CurrentPeriod{
			Weekly: PeriodSummary{
				Sales:    weeklySales,
				Orders:   weeklyOrders,
				Expenses: weeklyExpenses,
				Profit:   Profit(weeklySales, weeklyExpenses),
			},
			Monthly: PeriodSummary{
				Sales:    monthlySales,
				Orders:   monthlyOrders,
				Expenses: monthlyExpenses,
				Profit:   Profit(monthlySales, monthlyExpenses),
			},
		},
		RecentOrders:       recentOrders,
		SalesTrend:         MonthlyBuckets(trendShares),
		ExpensesByCategory: byCategory,
	}, nil
}

func (s *service) buildPublic(ctx context.Context, sellerID uuid.UUID, now time.Time) (*PublicReport, error) {
	windows := WindowsAt(now)

	isSeller, err := s.identity.IsSeller(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "verify seller")
	}
	if !isSeller {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
	}

	productIDs, err := s.products.OwnedProductIDs(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve seller catalog")
	}

	var (
		overviewShares []OrderShare
		trendShares    []OrderShare
	)

	if len(productIDs) > 0 {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			if overviewShares, err = s.orders.SellerOrderShares(gctx, productIDs, AllTime); err != nil {
				return fmt.Errorf("overview sales: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if trendShares, err = s.orders.SellerOrderShares(gctx, productIDs, windows.Trend()); err != nil {
				return fmt.Errorf("sales trend: %w", err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate seller report")
		}
	}

	totalSales, totalOrders := ReduceShares(overviewShares)

	return &PublicReport{
		Overview: Overview{
			TotalSales:  totalSales,
			TotalOrders: totalOrders,
		},
		SalesTrend: MonthlyBuckets(trendShares),
	}, nil
}
