package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/internal/reports"
	"github.com/angelmondragon/multistore-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/multistore-admin/pkg/errors"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
	"github.com/angelmondragon/multistore-admin/pkg/metrics"
)

// Service builds the back-office views and runs the destructive admin actions.
type Service interface {
	Overview(ctx context.Context) (reports.Overview, error)
	OrderTrend(ctx context.Context, rng enums.OrderTrendRange) ([]reports.OrderTrendPoint, error)
	RevenueTrend(ctx context.Context, rng enums.RevenueTrendRange) ([]reports.RevenueTrendPoint, error)
	TopVendors(ctx context.Context, limit int) ([]reports.VendorRank, error)
	TopCustomers(ctx context.Context, limit int) ([]reports.CustomerRank, error)
	TopProducts(ctx context.Context, limit int) ([]reports.ProductRank, error)
	Orders(ctx context.Context) ([]reports.EnrichedOrder, error)
	Products(ctx context.Context) ([]reports.EnrichedProduct, error)
	ProductChart(ctx context.Context) (reports.ProductChart, error)
	Stores(ctx context.Context) ([]reports.EnrichedStore, error)
	StoreSummary(ctx context.Context) (reports.StoreSummary, error)
	Vendors(ctx context.Context) ([]reports.EnrichedVendor, error)
	DeleteProduct(ctx context.Context, productID string) error
	DeleteVendor(ctx context.Context, userID string) (marketplace.VendorDeletion, error)
}

// Options carries the optional collaborators of the service.
type Options struct {
	Metrics *metrics.ReportMetrics
	Logger  *logger.Logger
	// Timeout bounds each view build, store reads included. Zero disables it.
	Timeout time.Duration
	Clock   func() time.Time
}

type service struct {
	repo    Repository
	metrics *metrics.ReportMetrics
	logg    *logger.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewService builds the admin service on top of a marketplace repository.
func NewService(repo Repository, opts Options) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		repo:    repo,
		metrics: opts.Metrics,
		logg:    opts.Logger,
		timeout: opts.Timeout,
		now:     clock,
	}, nil
}

func (s *service) Overview(ctx context.Context) (out reports.Overview, err error) {
	ctx, done := s.begin(ctx, "overview")
	defer func() { done(err) }()

	var (
		counts reports.OverviewCounts
		orders []marketplace.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts.Vendors, err = s.repo.CountVendors(gctx)
		return s.readFailure(gctx, "users", err)
	})
	g.Go(func() error {
		var err error
		counts.Stores, err = s.repo.CountStores(gctx)
		return s.readFailure(gctx, "stores", err)
	})
	g.Go(func() error {
		var err error
		counts.Categories, err = s.repo.CountCategories(gctx)
		return s.readFailure(gctx, "categories", err)
	})
	g.Go(func() error {
		var err error
		counts.OutOfStock, err = s.repo.CountOutOfStock(gctx)
		return s.readFailure(gctx, "products", err)
	})
	g.Go(func() error {
		var err error
		orders, err = s.repo.Orders(gctx)
		return s.readFailure(gctx, "orders", err)
	})
	if err := g.Wait(); err != nil {
		return reports.Overview{}, err
	}
	return reports.BuildOverview(counts, orders), nil
}

func (s *service) OrderTrend(ctx context.Context, rng enums.OrderTrendRange) (out []reports.OrderTrendPoint, err error) {
	if !rng.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid range").WithDetails(map[string]any{"range": rng.String()})
	}
	ctx, done := s.begin(ctx, "orders_trend")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needOrders)
	if err != nil {
		return nil, err
	}
	return reports.OrderTrend(snap.orders, rng, s.now()), nil
}

func (s *service) RevenueTrend(ctx context.Context, rng enums.RevenueTrendRange) (out []reports.RevenueTrendPoint, err error) {
	if !rng.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid range").WithDetails(map[string]any{"range": rng.String()})
	}
	ctx, done := s.begin(ctx, "revenue_trend")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needOrders)
	if err != nil {
		return nil, err
	}
	return reports.RevenueTrend(snap.orders, rng, s.now()), nil
}

func (s *service) TopVendors(ctx context.Context, limit int) (out []reports.VendorRank, err error) {
	ctx, done := s.begin(ctx, "top_vendors")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needOrders|needStores)
	if err != nil {
		return nil, err
	}
	return reports.TopVendors(snap.orders, snap.stores, limit), nil
}

func (s *service) TopCustomers(ctx context.Context, limit int) (out []reports.CustomerRank, err error) {
	ctx, done := s.begin(ctx, "top_customers")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needOrders)
	if err != nil {
		return nil, err
	}
	return reports.TopCustomers(snap.orders, limit), nil
}

func (s *service) TopProducts(ctx context.Context, limit int) (out []reports.ProductRank, err error) {
	ctx, done := s.begin(ctx, "top_products")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needOrders)
	if err != nil {
		return nil, err
	}
	return reports.TopProducts(snap.orders, limit), nil
}

func (s *service) Orders(ctx context.Context) (out []reports.EnrichedOrder, err error) {
	ctx, done := s.begin(ctx, "orders")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needOrders|needStores)
	if err != nil {
		return nil, err
	}
	return reports.EnrichOrders(snap.orders, snap.stores), nil
}

func (s *service) Products(ctx context.Context) (out []reports.EnrichedProduct, err error) {
	ctx, done := s.begin(ctx, "products")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needProducts|needStores)
	if err != nil {
		return nil, err
	}
	return reports.EnrichProducts(snap.products, snap.stores), nil
}

func (s *service) ProductChart(ctx context.Context) (out reports.ProductChart, err error) {
	ctx, done := s.begin(ctx, "product_chart")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needProducts|needStores)
	if err != nil {
		return reports.ProductChart{}, err
	}
	return reports.BuildProductChart(snap.products, snap.stores), nil
}

func (s *service) Stores(ctx context.Context) (out []reports.EnrichedStore, err error) {
	ctx, done := s.begin(ctx, "stores")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needAll)
	if err != nil {
		return nil, err
	}
	return reports.EnrichStores(snap.stores, snap.vendors, snap.products, snap.orders), nil
}

func (s *service) StoreSummary(ctx context.Context) (out reports.StoreSummary, err error) {
	ctx, done := s.begin(ctx, "store_summary")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needAll)
	if err != nil {
		return reports.StoreSummary{}, err
	}
	return reports.SummarizeStores(reports.EnrichStores(snap.stores, snap.vendors, snap.products, snap.orders)), nil
}

func (s *service) Vendors(ctx context.Context) (out []reports.EnrichedVendor, err error) {
	ctx, done := s.begin(ctx, "vendors")
	defer func() { done(err) }()

	snap, err := s.load(ctx, needAll)
	if err != nil {
		return nil, err
	}
	return reports.EnrichVendors(snap.stores, snap.vendors, snap.products, snap.orders), nil
}

func (s *service) DeleteProduct(ctx context.Context, productID string) (err error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	ctx, done := s.begin(ctx, "delete_product")
	defer func() { done(err) }()

	deleted, err := s.repo.DeleteProduct(ctx, productID)
	switch {
	case errors.Is(err, marketplace.ErrInvalidID):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	case err != nil:
		return s.readFailure(ctx, "products", err)
	case !deleted:
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	s.metrics.AddDeleted("products", 1)
	s.info(s.withFields(ctx, map[string]any{"product_id": productID}), "admin.product.deleted")
	return nil
}

func (s *service) DeleteVendor(ctx context.Context, userID string) (out marketplace.VendorDeletion, err error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return marketplace.VendorDeletion{}, pkgerrors.New(pkgerrors.CodeValidation, "userID is required")
	}
	ctx, done := s.begin(ctx, "delete_vendor")
	defer func() { done(err) }()

	result, err := s.repo.DeleteVendor(ctx, userID)
	if err != nil {
		return marketplace.VendorDeletion{}, s.readFailure(ctx, "users", err)
	}

	s.metrics.AddDeleted("users", result.Users)
	s.metrics.AddDeleted("stores", result.Stores)
	s.metrics.AddDeleted("categories", result.Categories)
	s.metrics.AddDeleted("products", result.Products)
	s.metrics.AddDeleted("orders", result.Orders)
	s.info(s.withFields(ctx, map[string]any{
		"user_id":            userID,
		"deleted_stores":     result.Stores,
		"deleted_categories": result.Categories,
		"deleted_products":   result.Products,
		"deleted_orders":     result.Orders,
	}), "admin.vendor.deleted")
	return result, nil
}

// begin starts the per view timeout and metrics. The returned func must be
// called with the view's final error.
func (s *service) begin(ctx context.Context, report string) (context.Context, func(error)) {
	started := time.Now()
	cancel := context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	if s.logg != nil {
		ctx = s.logg.WithReport(ctx, report)
	}
	return ctx, func(err error) {
		cancel()
		s.metrics.ObserveDuration(report, time.Since(started))
		if err != nil && !pkgerrors.IsClientError(err) {
			s.metrics.IncFailure(report)
		}
	}
}

// readFailure tags a store error as a dependency failure, or as a timeout when
// the view's deadline ran out. The cause stays in the chain for logs and
// errors.Is.
func (s *service) readFailure(ctx context.Context, collection string, err error) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		return err
	}
	if ctx.Err() != nil {
		return pkgerrors.FromContext(err, fmt.Sprintf("read %s", collection))
	}
	s.metrics.IncStoreFailure(collection)
	if s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "collection", collection), "admin.store.read_failed")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("read %s", collection))
}

func (s *service) withFields(ctx context.Context, fields map[string]any) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithFields(ctx, fields)
}

func (s *service) info(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Info(ctx, msg)
	}
}
