package reports

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

func fixtureStores() []marketplace.Store {
	return []marketplace.Store{
		{ID: "S1", Name: "Green Leaf", Location: "Austin", UserID: "U1", CreatedAt: at("2023-05-01")},
		{ID: "S2", Name: "", Location: "", UserID: "U2"},
		{ID: "S3", Name: "Orphan", UserID: "U404"},
		{ID: "S4", Name: "Second Shop", UserID: "U1", CreatedAt: at("2023-06-01")},
	}
}

func fixtureVendors() []marketplace.Vendor {
	return []marketplace.Vendor{
		{ID: "U1", FirstName: "Ana", LastName: "Lima", Email: "ana@example.com", Contact: "555-0100", CreatedAt: at("2022-01-01")},
		{ID: "U2", FirstName: "Bo", Email: "bo@example.com", CreatedAt: at("2022-02-01")},
	}
}

func fixtureProducts() []marketplace.Product {
	return []marketplace.Product{
		{ID: "P1", Title: "tea", StoreID: "S1", Quantity: 0},
		{ID: "P2", Title: "mug", StoreID: "S1 ", Quantity: 5},
		{ID: "P3", Title: "pot", StoreID: "S2", Quantity: 0},
		{ID: "P4", Title: "ghost", StoreID: "S9", Quantity: 2},
	}
}

func fixtureOrders() []marketplace.Order {
	return []marketplace.Order{
		order("O1", 40, "2024-01-10",
			marketplace.LineItem{StoreID: "S1", Title: "tea", Quantity: 2, Price: ptr(10.0)},
			marketplace.LineItem{StoreID: "S1", Title: "mug", Quantity: 1, Total: ptr(20.0), Price: ptr(99.0)},
		),
		order("O2", 15, "2024-02-01",
			marketplace.LineItem{StoreID: "S2", Title: "pot", Quantity: 3},
			marketplace.LineItem{StoreID: "S9", Title: "ghost", Quantity: 1, Price: ptr(15.0)},
		),
		order("O3", 5, "",
			marketplace.LineItem{StoreID: "S1", Title: "tea", Quantity: 1, Total: ptr(5.0)},
		),
	}
}

func TestEnrichOrdersUnknownStore(t *testing.T) {
	orders := fixtureOrders()
	got := EnrichOrders(orders, fixtureStores())

	if got[0].ID != "O2" || got[1].ID != "O1" || got[2].ID != "O3" {
		t.Fatalf("expected newest first with undated last, got %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].Items[0].VendorName != UnnamedStore {
		t.Fatalf("expected unnamed store label, got %q", got[0].Items[0].VendorName)
	}
	if got[0].Items[1].VendorName != UnknownVendor {
		t.Fatalf("expected unknown vendor label for S9, got %q", got[0].Items[1].VendorName)
	}
	if got[1].Items[0].VendorName != "Green Leaf" {
		t.Fatalf("unexpected vendor name %q", got[1].Items[0].VendorName)
	}

	overview := BuildOverview(OverviewCounts{}, orders)
	if overview.TotalOrders != 3 || overview.TotalRevenue != 60 {
		t.Fatalf("orders with unknown stores still count: %+v", overview)
	}

	payload, err := json.Marshal(got[0].Items[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(payload, []byte(`"storeID":"S9"`)) || !bytes.Contains(payload, []byte(`"vendorName":"Unknown Vendor"`)) {
		t.Fatalf("expected flattened line item json, got %s", payload)
	}
}

func TestEnrichProducts(t *testing.T) {
	got := EnrichProducts(fixtureProducts(), fixtureStores())
	names := []string{}
	for _, p := range got {
		names = append(names, p.VendorName)
	}
	want := []string{"Green Leaf", "Green Leaf", UnknownVendor, UnknownVendor}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestEnrichStoresDropsUnresolvedVendors(t *testing.T) {
	got := EnrichStores(fixtureStores(), fixtureVendors(), fixtureProducts(), fixtureOrders())

	if len(got) != 3 {
		t.Fatalf("expected the orphan store to be dropped, got %d stores", len(got))
	}
	for _, s := range got {
		if s.StoreID == "S3" {
			t.Fatal("store with unresolved vendor must not be returned")
		}
	}

	s1 := got[0]
	if s1.StoreID != "S1" || s1.VendorName != "Ana Lima" || s1.Email != "ana@example.com" {
		t.Fatalf("unexpected S1 join %+v", s1)
	}
	if s1.ProductCount != 2 || s1.OrderCount != 2 {
		t.Fatalf("unexpected S1 counters %+v", s1)
	}
	// 2 x 10 from price, 20 from total, 5 from total
	if s1.TotalRevenue != 45 {
		t.Fatalf("expected S1 revenue 45, got %v", s1.TotalRevenue)
	}

	s2 := got[1]
	if s2.StoreName != UnnamedStore || s2.Location != NoLocation || s2.TotalRevenue != 0 || s2.OrderCount != 1 {
		t.Fatalf("unexpected S2 fallbacks %+v", s2)
	}
	if s2.CreatedAt.Valid {
		t.Fatal("missing store createdAt should stay null")
	}
}

func TestSummarizeStores(t *testing.T) {
	stores := EnrichStores(fixtureStores(), fixtureVendors(), fixtureProducts(), fixtureOrders())
	summary := SummarizeStores(stores)

	if summary.TotalStores != 3 || summary.TotalProducts != 3 || summary.TotalOrders != 3 {
		t.Fatalf("unexpected totals %+v", summary)
	}
	if summary.ActiveStores != 2 || summary.InactiveStores != 1 {
		t.Fatalf("unexpected activity split %+v", summary)
	}
	if summary.MostActiveStore == nil || summary.MostActiveStore.StoreID != "S1" {
		t.Fatalf("expected S1 to be most active, got %+v", summary.MostActiveStore)
	}

	if empty := SummarizeStores(nil); empty.MostActiveStore != nil || empty.TotalStores != 0 {
		t.Fatalf("unexpected empty summary %+v", empty)
	}
}

func TestEnrichVendors(t *testing.T) {
	got := EnrichVendors(fixtureStores(), fixtureVendors(), fixtureProducts(), fixtureOrders())
	if len(got) != 2 {
		t.Fatalf("expected one entry per resolved vendor, got %+v", got)
	}

	ana := got[0]
	if ana.VendorID != "U1" || ana.StoreID != "S1" || ana.ItemCount != 2 || ana.OrderCount != 2 {
		t.Fatalf("expected ana through her first store, got %+v", ana)
	}
	if !ana.CreatedAt.Valid || ana.CreatedAt.Time.Year() != 2023 {
		t.Fatalf("expected store createdAt, got %+v", ana.CreatedAt)
	}

	bo := got[1]
	if bo.Contact != ContactMissing || bo.StoreName != NoStoreName || bo.Location != NoLocation {
		t.Fatalf("unexpected fallbacks %+v", bo)
	}
	if !bo.CreatedAt.Valid || bo.CreatedAt.Time.Month() != 2 || bo.CreatedAt.Time.Year() != 2022 {
		t.Fatalf("expected vendor createdAt fallback, got %+v", bo.CreatedAt)
	}

	payload, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(payload)), "password") {
		t.Fatalf("vendor output must not carry credentials: %s", payload)
	}
}

func TestAggregationsAreIdempotent(t *testing.T) {
	stores, vendors, products, orders := fixtureStores(), fixtureVendors(), fixtureProducts(), fixtureOrders()
	now := mustTime("2024-02-15T00:00:00Z")

	build := func() []byte {
		views := map[string]any{
			"orders":       EnrichOrders(orders, stores),
			"products":     EnrichProducts(products, stores),
			"stores":       EnrichStores(stores, vendors, products, orders),
			"vendors":      EnrichVendors(stores, vendors, products, orders),
			"chart":        BuildProductChart(products, stores),
			"topVendors":   TopVendors(orders, stores, 5),
			"topCustomers": TopCustomers(orders, 5),
			"topProducts":  TopProducts(orders, 3),
			"orderTrend":   OrderTrend(orders, "30d", now),
			"revenueTrend": RevenueTrend(orders, "6m", now),
		}
		payload, err := json.Marshal(views)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return payload
	}

	first := build()
	second := build()
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical output across runs\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestEnrichStoresKeepsMissingCreatedAtNull(t *testing.T) {
	stores := []marketplace.Store{{ID: "S1", Name: "Green Leaf", UserID: "U1"}}
	vendors := []marketplace.Vendor{{ID: "U1", FirstName: "Ana"}}

	first, err := json.Marshal(EnrichStores(stores, vendors, nil, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(first, []byte(`"createdAt":null`)) {
		t.Fatalf("expected null createdAt, got %s", first)
	}
	second, _ := json.Marshal(EnrichStores(stores, vendors, nil, nil))
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical output for identical input")
	}
}
