package admin

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

type need uint8

const (
	needOrders need = 1 << iota
	needStores
	needVendors
	needProducts

	needAll = needOrders | needStores | needVendors | needProducts
)

// snapshot holds the collections a view reads. Each is loaded at most once
// per request and the loads run concurrently.
type snapshot struct {
	orders   []marketplace.Order
	stores   []marketplace.Store
	vendors  []marketplace.Vendor
	products []marketplace.Product
}

func (s *service) load(ctx context.Context, n need) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)

	if n&needOrders != 0 {
		g.Go(func() error {
			var err error
			snap.orders, err = s.repo.Orders(gctx)
			return s.readFailure(gctx, "orders", err)
		})
	}
	if n&needStores != 0 {
		g.Go(func() error {
			var err error
			snap.stores, err = s.repo.Stores(gctx)
			return s.readFailure(gctx, "stores", err)
		})
	}
	if n&needVendors != 0 {
		g.Go(func() error {
			var err error
			snap.vendors, err = s.repo.Vendors(gctx)
			return s.readFailure(gctx, "users", err)
		})
	}
	if n&needProducts != 0 {
		g.Go(func() error {
			var err error
			snap.products, err = s.repo.Products(gctx)
			return s.readFailure(gctx, "products", err)
		})
	}

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}
