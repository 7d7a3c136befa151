package reports

import "github.com/angelmondragon/multistore-admin/internal/marketplace"

// Overview is the dashboard headline.
type Overview struct {
	VendorCount     int64   `json:"vendorCount"`
	StoreCount      int64   `json:"storeCount"`
	TotalOrders     int64   `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	OutOfStockCount int64   `json:"outOfStockCount"`
	CategoryCount   int64   `json:"categoryCount"`
}

// OverviewCounts carries the plain collection counts the store can answer
// without materializing documents.
type OverviewCounts struct {
	Vendors    int64
	Stores     int64
	Categories int64
	OutOfStock int64
}

// BuildOverview combines the collection counts with the order totals. Orders
// without a readable date still count here.
func BuildOverview(counts OverviewCounts, orders []marketplace.Order) Overview {
	return Overview{
		VendorCount:     counts.Vendors,
		StoreCount:      counts.Stores,
		TotalOrders:     int64(len(orders)),
		TotalRevenue:    TotalRevenue(orders).InexactFloat64(),
		OutOfStockCount: counts.OutOfStock,
		CategoryCount:   counts.Categories,
	}
}

// CountOutOfStock counts products with no units on hand.
func CountOutOfStock(products []marketplace.Product) int64 {
	var n int64
	for _, p := range products {
		if !p.InStock() {
			n++
		}
	}
	return n
}
