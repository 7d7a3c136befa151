package admin

import (
	"context"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

// Repository is the marketplace store as seen by the back-office. Reads return
// whole collections as of call time; counts may be answered by the store
// without materializing documents.
type Repository interface {
	Orders(ctx context.Context) ([]marketplace.Order, error)
	Stores(ctx context.Context) ([]marketplace.Store, error)
	Vendors(ctx context.Context) ([]marketplace.Vendor, error)
	Products(ctx context.Context) ([]marketplace.Product, error)

	CountVendors(ctx context.Context) (int64, error)
	CountStores(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountOutOfStock(ctx context.Context) (int64, error)

	// DeleteProduct reports whether a product was removed.
	DeleteProduct(ctx context.Context, productID string) (bool, error)
	// DeleteVendor removes the vendor, their stores and everything that
	// references those stores.
	DeleteVendor(ctx context.Context, userID string) (marketplace.VendorDeletion, error)

	Ping(ctx context.Context) error
}
