package reports

import (
	"cmp"
	"slices"
	"strings"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

// Unknown is the display name used when a ranked group has no name.
const Unknown = "Unknown"

// TopN returns up to n items ordered by metric, highest first. Items with equal
// metrics keep their input order. The input slice is not modified.
func TopN[T any, M cmp.Ordered](items []T, metric func(T) M, n int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(metric(b), metric(a))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// VendorRank is a store ranked by how many orders include it.
type VendorRank struct {
	Rank    int    `json:"rank"`
	StoreID string `json:"storeID"`
	Name    string `json:"name"`
	Orders  int    `json:"orders"`
}

// TopVendors ranks stores by the number of distinct orders containing at
// least one of their lines. An order with several lines from the same store
// counts once for it, so this is not a count of line items. Names fall back
// to the store id when the store record is missing or unnamed.
func TopVendors(orders []marketplace.Order, stores []marketplace.Store, n int) []VendorRank {
	index := indexStores(stores)

	var ranked []VendorRank
	position := make(map[string]int)
	for _, order := range orders {
		counted := make(map[string]struct{}, len(order.Items))
		for _, item := range order.Items {
			id := strings.TrimSpace(item.StoreID)
			if id == "" {
				continue
			}
			if _, dup := counted[id]; dup {
				continue
			}
			counted[id] = struct{}{}

			i, ok := position[id]
			if !ok {
				name := id
				if store, found := index.lookup(id); found && strings.TrimSpace(store.Name) != "" {
					name = strings.TrimSpace(store.Name)
				}
				i = len(ranked)
				position[id] = i
				ranked = append(ranked, VendorRank{StoreID: id, Name: name})
			}
			ranked[i].Orders++
		}
	}

	top := TopN(ranked, func(v VendorRank) int { return v.Orders }, n)
	for i := range top {
		top[i].Rank = i + 1
	}
	return top
}

// CustomerRank is a customer ranked by order count.
type CustomerRank struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Orders int    `json:"orders"`
}

// TopCustomers groups orders by case-insensitive email and ranks the groups by
// order count. Each group keeps the name from its first order; orders without
// an email form one group of their own.
func TopCustomers(orders []marketplace.Order, n int) []CustomerRank {
	var ranked []CustomerRank
	position := make(map[string]int)
	for _, order := range orders {
		email := strings.TrimSpace(order.Email)
		key := strings.ToLower(email)
		i, ok := position[key]
		if !ok {
			name := order.CustomerName()
			if name == "" {
				name = Unknown
			}
			i = len(ranked)
			position[key] = i
			ranked = append(ranked, CustomerRank{Name: name, Email: email})
		}
		ranked[i].Orders++
	}

	top := TopN(ranked, func(c CustomerRank) int { return c.Orders }, n)
	for i := range top {
		top[i].Rank = i + 1
	}
	return top
}

// ProductRank is a product title ranked by units sold.
type ProductRank struct {
	Rank     int    `json:"rank"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// TopProducts sums cart quantities per product title and ranks them.
func TopProducts(orders []marketplace.Order, n int) []ProductRank {
	var ranked []ProductRank
	position := make(map[string]int)
	for _, order := range orders {
		for _, item := range order.Items {
			i, ok := position[item.Title]
			if !ok {
				i = len(ranked)
				position[item.Title] = i
				ranked = append(ranked, ProductRank{Title: item.Title})
			}
			ranked[i].Quantity += item.Quantity
		}
	}

	top := TopN(ranked, func(p ProductRank) int { return p.Quantity }, n)
	for i := range top {
		top[i].Rank = i + 1
	}
	return top
}
