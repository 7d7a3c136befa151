package reports

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

// storeIndex resolves store ids to records. Ids are compared trimmed and the
// first record wins when a store id repeats.
type storeIndex map[string]marketplace.Store

func indexStores(stores []marketplace.Store) storeIndex {
	index := make(storeIndex, len(stores))
	for _, s := range stores {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			continue
		}
		if _, exists := index[id]; !exists {
			index[id] = s
		}
	}
	return index
}

func (idx storeIndex) lookup(id string) (marketplace.Store, bool) {
	s, ok := idx[strings.TrimSpace(id)]
	return s, ok
}

type vendorIndex map[string]marketplace.Vendor

func indexVendors(vendors []marketplace.Vendor) vendorIndex {
	index := make(vendorIndex, len(vendors))
	for _, v := range vendors {
		id := strings.TrimSpace(v.ID)
		if id == "" {
			continue
		}
		if _, exists := index[id]; !exists {
			index[id] = v
		}
	}
	return index
}

func (idx vendorIndex) lookup(id string) (marketplace.Vendor, bool) {
	v, ok := idx[strings.TrimSpace(id)]
	return v, ok
}

// storeActivity holds per store counters gathered in one pass over products
// and orders.
type storeActivity struct {
	products map[string]int
	orders   map[string]int
	revenue  map[string]decimal.Decimal
}

func collectActivity(products []marketplace.Product, orders []marketplace.Order) storeActivity {
	activity := storeActivity{
		products: make(map[string]int),
		orders:   make(map[string]int),
		revenue:  make(map[string]decimal.Decimal),
	}
	for _, p := range products {
		activity.products[strings.TrimSpace(p.StoreID)]++
	}
	for _, order := range orders {
		seen := make(map[string]struct{}, len(order.Items))
		for _, item := range order.Items {
			id := strings.TrimSpace(item.StoreID)
			activity.revenue[id] = activity.revenue[id].Add(LineRevenue(item))
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			activity.orders[id]++
		}
	}
	return activity
}
