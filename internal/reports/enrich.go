package reports

import (
	"cmp"
	"slices"
	"strings"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/pkg/types"
)

const (
	UnknownVendor   = "Unknown Vendor"
	UnnamedStore    = "Unnamed Store"
	NoStoreName     = "No name"
	NoLocation      = "N/A"
	ContactMissing  = "Not provided"
	InStockLabel    = "In Stock"
	OutOfStockLabel = "Out of Stock"
)

// EnrichedLineItem is a cart line with the display name of its store.
type EnrichedLineItem struct {
	marketplace.LineItem
	VendorName string `json:"vendorName"`
}

// EnrichedOrder is an order whose lines carry store display names.
type EnrichedOrder struct {
	ID        string             `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	City      string             `json:"city"`
	Total     float64            `json:"total"`
	Date      types.Timestamp    `json:"date"`
	Items     []EnrichedLineItem `json:"cartItems"`
}

// EnrichOrders annotates every line with its store name, newest order first.
// Orders without a readable date sort last and ties keep input order. Lines of
// an unnamed store read "Unnamed Store" and lines of an unknown store read
// "Unknown Vendor".
func EnrichOrders(orders []marketplace.Order, stores []marketplace.Store) []EnrichedOrder {
	index := indexStores(stores)

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b marketplace.Order) int {
		switch {
		case a.Date.Valid && b.Date.Valid:
			return b.Date.Time.Compare(a.Date.Time)
		case a.Date.Valid:
			return -1
		case b.Date.Valid:
			return 1
		default:
			return 0
		}
	})

	enriched := make([]EnrichedOrder, 0, len(sorted))
	for _, order := range sorted {
		items := make([]EnrichedLineItem, 0, len(order.Items))
		for _, item := range order.Items {
			name := UnknownVendor
			if store, ok := index.lookup(item.StoreID); ok {
				name = cmp.Or(strings.TrimSpace(store.Name), UnnamedStore)
			}
			items = append(items, EnrichedLineItem{LineItem: item, VendorName: name})
		}
		enriched = append(enriched, EnrichedOrder{
			ID:        order.ID,
			FirstName: order.FirstName,
			LastName:  order.LastName,
			Email:     order.Email,
			Phone:     order.Phone,
			City:      order.City,
			Total:     order.Total,
			Date:      order.Date,
			Items:     items,
		})
	}
	return enriched
}

// EnrichedProduct is a product with the display name of its store.
type EnrichedProduct struct {
	marketplace.Product
	VendorName string `json:"vendorName"`
}

// EnrichProducts resolves each product's store name, "Unknown Vendor" when the
// store is missing or unnamed. Input order is kept.
func EnrichProducts(products []marketplace.Product, stores []marketplace.Store) []EnrichedProduct {
	index := indexStores(stores)
	enriched := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		name := UnknownVendor
		if store, ok := index.lookup(p.StoreID); ok && strings.TrimSpace(store.Name) != "" {
			name = strings.TrimSpace(store.Name)
		}
		enriched = append(enriched, EnrichedProduct{Product: p, VendorName: name})
	}
	return enriched
}

// EnrichedStore is a store joined with its owner and activity counters.
type EnrichedStore struct {
	StoreID      string          `json:"storeID"`
	StoreName    string          `json:"storeName"`
	Location     string          `json:"location"`
	VendorID     string          `json:"vendorID"`
	VendorName   string          `json:"vendorName"`
	Email        string          `json:"email"`
	ProductCount int             `json:"productCount"`
	OrderCount   int             `json:"orderCount"`
	TotalRevenue float64         `json:"totalRevenue"`
	CreatedAt    types.Timestamp `json:"createdAt"`
}

// EnrichStores joins stores with their owning vendor and counts products,
// orders and line revenue per store. Stores whose vendor cannot be resolved are
// left out. Input order is kept.
func EnrichStores(stores []marketplace.Store, vendors []marketplace.Vendor, products []marketplace.Product, orders []marketplace.Order) []EnrichedStore {
	owners := indexVendors(vendors)
	activity := collectActivity(products, orders)

	enriched := make([]EnrichedStore, 0, len(stores))
	for _, store := range stores {
		vendor, ok := owners.lookup(store.UserID)
		if !ok {
			continue
		}
		id := strings.TrimSpace(store.ID)
		enriched = append(enriched, EnrichedStore{
			StoreID:      store.ID,
			StoreName:    cmp.Or(strings.TrimSpace(store.Name), UnnamedStore),
			Location:     cmp.Or(strings.TrimSpace(store.Location), NoLocation),
			VendorID:     vendor.ID,
			VendorName:   vendor.Name(),
			Email:        vendor.Email,
			ProductCount: activity.products[id],
			OrderCount:   activity.orders[id],
			TotalRevenue: activity.revenue[id].InexactFloat64(),
			CreatedAt:    store.CreatedAt,
		})
	}
	return enriched
}

// StoreSummary aggregates enriched stores for the stores page header.
type StoreSummary struct {
	TotalStores     int            `json:"totalStores"`
	TotalProducts   int            `json:"totalProducts"`
	TotalOrders     int            `json:"totalOrders"`
	ActiveStores    int            `json:"activeStores"`
	InactiveStores  int            `json:"inactiveStores"`
	MostActiveStore *EnrichedStore `json:"mostActiveStore"`
}

// SummarizeStores counts active stores (at least one product) and picks the
// store with the most orders, the first one winning ties.
func SummarizeStores(stores []EnrichedStore) StoreSummary {
	summary := StoreSummary{TotalStores: len(stores)}
	for i := range stores {
		s := stores[i]
		summary.TotalProducts += s.ProductCount
		summary.TotalOrders += s.OrderCount
		if s.ProductCount > 0 {
			summary.ActiveStores++
		} else {
			summary.InactiveStores++
		}
		if summary.MostActiveStore == nil || s.OrderCount > summary.MostActiveStore.OrderCount {
			summary.MostActiveStore = &stores[i]
		}
	}
	return summary
}

// EnrichedVendor is a vendor seen through the store they own. It never carries
// credentials.
type EnrichedVendor struct {
	VendorID   string          `json:"vendorID"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Contact    string          `json:"contact"`
	StoreID    string          `json:"storeID"`
	StoreName  string          `json:"storeName"`
	Location   string          `json:"location"`
	ItemCount  int             `json:"itemCount"`
	OrderCount int             `json:"orderCount"`
	CreatedAt  types.Timestamp `json:"createdAt"`
}

// EnrichVendors walks stores, resolves each owner and counts the store's
// products and orders. Stores without a resolvable owner are skipped and each
// vendor appears once, through the first store found for them. CreatedAt is the
// store's creation time, else the vendor's, else null.
func EnrichVendors(stores []marketplace.Store, vendors []marketplace.Vendor, products []marketplace.Product, orders []marketplace.Order) []EnrichedVendor {
	owners := indexVendors(vendors)
	activity := collectActivity(products, orders)

	seen := make(map[string]struct{}, len(stores))
	enriched := make([]EnrichedVendor, 0, len(stores))
	for _, store := range stores {
		vendor, ok := owners.lookup(store.UserID)
		if !ok {
			continue
		}
		if _, dup := seen[vendor.ID]; dup {
			continue
		}
		seen[vendor.ID] = struct{}{}

		createdAt := store.CreatedAt
		if !createdAt.Valid {
			createdAt = vendor.CreatedAt
		}
		id := strings.TrimSpace(store.ID)
		enriched = append(enriched, EnrichedVendor{
			VendorID:   vendor.ID,
			Name:       vendor.Name(),
			Email:      vendor.Email,
			Contact:    cmp.Or(strings.TrimSpace(vendor.Contact), ContactMissing),
			StoreID:    store.ID,
			StoreName:  cmp.Or(strings.TrimSpace(store.Name), NoStoreName),
			Location:   cmp.Or(strings.TrimSpace(store.Location), NoLocation),
			ItemCount:  activity.products[id],
			OrderCount: activity.orders[id],
			CreatedAt:  createdAt,
		})
	}
	return enriched
}
