package reports

import (
	"testing"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

func TestTopNIsStableForTies(t *testing.T) {
	type entry struct {
		name  string
		score int
	}
	input := []entry{{"a", 1}, {"b", 3}, {"c", 1}, {"d", 3}, {"e", 2}, {"f", 1}}

	got := TopN(input, func(e entry) int { return e.score }, 5)
	want := []string{"b", "d", "e", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].name != name {
			t.Fatalf("position %d: expected %s, got %s (%+v)", i, name, got[i].name, got)
		}
	}
	if input[0].name != "a" || input[1].name != "b" {
		t.Fatal("TopN must not reorder its input")
	}
	if out := TopN(input, func(e entry) int { return e.score }, 0); len(out) != 0 {
		t.Fatalf("expected empty result for n=0, got %+v", out)
	}
	if out := TopN([]entry(nil), func(e entry) int { return e.score }, 3); out == nil || len(out) != 0 {
		t.Fatalf("expected non-nil empty result, got %#v", out)
	}
}

func TestTopVendorsCountsDistinctOrders(t *testing.T) {
	stores := []marketplace.Store{
		{ID: "S1", Name: "Green Leaf"},
		{ID: "S2", Name: ""},
	}
	orders := []marketplace.Order{
		order("o1", 10, "", line("S1", "tea", 1), line("S1", "mug", 2)),
		order("o2", 10, "", line("S2", "pot", 1), line("S9", "ghost", 1)),
		order("o3", 10, "", line("S1", "tea", 1)),
		order("o4", 10, "", line(" S2 ", "pot", 1)),
	}

	got := TopVendors(orders, stores, 5)
	if len(got) != 3 {
		t.Fatalf("expected 3 vendors, got %+v", got)
	}
	if got[0].StoreID != "S1" || got[0].Orders != 2 || got[0].Name != "Green Leaf" || got[0].Rank != 1 {
		t.Fatalf("unexpected leader %+v", got[0])
	}
	if got[1].StoreID != "S2" || got[1].Orders != 2 || got[1].Name != "S2" {
		t.Fatalf("unnamed store should fall back to its id: %+v", got[1])
	}
	if got[2].StoreID != "S9" || got[2].Name != "S9" || got[2].Rank != 3 {
		t.Fatalf("unknown store should fall back to its id: %+v", got[2])
	}

	if top := TopVendors(orders, stores, 1); len(top) != 1 || top[0].StoreID != "S1" {
		t.Fatalf("expected truncation to the leader, got %+v", top)
	}
}

func TestTopCustomersGroupsByEmail(t *testing.T) {
	orders := []marketplace.Order{
		{ID: "1", FirstName: "Ana", LastName: "Lima", Email: "ana@example.com"},
		{ID: "2", FirstName: "Bo", Email: "bo@example.com"},
		{ID: "3", FirstName: "Ana Maria", Email: "ANA@example.com "},
		{ID: "4", Email: ""},
		{ID: "5", FirstName: "Bo", Email: "bo@example.com"},
		{ID: "6", FirstName: "Cy", Email: "cy@example.com"},
	}

	got := TopCustomers(orders, 5)
	if len(got) != 4 {
		t.Fatalf("expected 4 customers, got %+v", got)
	}
	if got[0].Name != "Ana Lima" || got[0].Email != "ana@example.com" || got[0].Orders != 2 {
		t.Fatalf("expected first-seen name and email for ana, got %+v", got[0])
	}
	if got[1].Name != "Bo" || got[1].Orders != 2 {
		t.Fatalf("unexpected second customer %+v", got[1])
	}
	if got[2].Name != Unknown || got[2].Email != "" || got[2].Orders != 1 {
		t.Fatalf("expected nameless customer to read Unknown, got %+v", got[2])
	}
	if got[3].Name != "Cy" || got[3].Rank != 4 {
		t.Fatalf("unexpected last customer %+v", got[3])
	}
}

func TestTopProductsSumsQuantities(t *testing.T) {
	orders := []marketplace.Order{
		order("o1", 0, "", line("S1", "tea", 2), line("S1", "mug", 1)),
		order("o2", 0, "", line("S2", "pot", 3), line("S1", "tea", 2)),
		order("o3", 0, "", line("S2", "cup", 3)),
	}

	got := TopProducts(orders, 3)
	want := []ProductRank{
		{Rank: 1, Title: "tea", Quantity: 4},
		{Rank: 2, Title: "pot", Quantity: 3},
		{Rank: 3, Title: "cup", Quantity: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
