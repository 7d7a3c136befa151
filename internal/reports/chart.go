package reports

import (
	"strings"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

// VendorProductCount is the number of products listed by one store.
type VendorProductCount struct {
	VendorName string `json:"vendorName"`
	Count      int    `json:"count"`
}

// StockSlice is one labelled slice of the stock pie chart.
type StockSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// StockBreakdown partitions products by units on hand.
type StockBreakdown struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// Slices renders the breakdown as chart slices, in stock first.
func (b StockBreakdown) Slices() []StockSlice {
	return []StockSlice{
		{Label: InStockLabel, Value: b.InStock},
		{Label: OutOfStockLabel, Value: b.OutOfStock},
	}
}

// ProductChart backs the product analytics widgets.
type ProductChart struct {
	ByVendor []VendorProductCount `json:"byVendor"`
	ByStock  []StockSlice         `json:"byStock"`
	Stock    StockBreakdown       `json:"stock"`
}

// BreakdownStock counts in-stock (quantity > 0) and out-of-stock products.
func BreakdownStock(products []marketplace.Product) StockBreakdown {
	var b StockBreakdown
	for _, p := range products {
		if p.InStock() {
			b.InStock++
		} else {
			b.OutOfStock++
		}
	}
	return b
}

// vendorKey groups products by resolved store id. Every unresolved product
// shares the zero key.
type vendorKey struct {
	storeID string
}

// ProductsByVendor counts products per resolved store in first-seen order.
// Products whose store is missing or unnamed are counted under "Unknown".
func ProductsByVendor(products []marketplace.Product, stores []marketplace.Store) []VendorProductCount {
	index := indexStores(stores)

	counts := []VendorProductCount{}
	position := make(map[vendorKey]int)
	for _, p := range products {
		key := vendorKey{}
		name := Unknown
		if store, ok := index.lookup(p.StoreID); ok && strings.TrimSpace(store.Name) != "" {
			key = vendorKey{storeID: strings.TrimSpace(store.ID)}
			name = strings.TrimSpace(store.Name)
		}
		i, ok := position[key]
		if !ok {
			i = len(counts)
			position[key] = i
			counts = append(counts, VendorProductCount{VendorName: name})
		}
		counts[i].Count++
	}
	return counts
}

// BuildProductChart combines the per vendor counts with the stock breakdown.
func BuildProductChart(products []marketplace.Product, stores []marketplace.Store) ProductChart {
	stock := BreakdownStock(products)
	return ProductChart{
		ByVendor: ProductsByVendor(products, stores),
		ByStock:  stock.Slices(),
		Stock:    stock,
	}
}
