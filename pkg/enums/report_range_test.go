package enums

import "testing"

func TestParseOrderTrendRange(t *testing.T) {
	got, err := ParseOrderTrendRange(" 30D ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != OrderTrendRange30d {
		t.Fatalf("expected 30d, got %s", got)
	}
	if got.Granularity() != GranularityDay {
		t.Fatalf("expected day buckets for 30d, got %s", got.Granularity())
	}
	if OrderTrendRange3m.Granularity() != GranularityMonth {
		t.Fatalf("expected month buckets for 3m")
	}
	if OrderTrendRangeAll.Granularity() != GranularityMonth {
		t.Fatalf("expected month buckets for all")
	}
	if _, err := ParseOrderTrendRange("2w"); err == nil {
		t.Fatal("expected error for unknown range")
	}
}

func TestParseRevenueTrendRange(t *testing.T) {
	got, err := ParseRevenueTrendRange("1Y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Months() != 12 {
		t.Fatalf("expected 12 months, got %d", got.Months())
	}
	if RevenueTrendRange3m.Months() != 3 || RevenueTrendRange6m.Months() != 6 {
		t.Fatal("unexpected month counts")
	}
	if _, err := ParseRevenueTrendRange("24h"); err == nil {
		t.Fatal("expected error for unsupported revenue range")
	}
	if RevenueTrendRange("9m").Months() != 0 {
		t.Fatal("unknown range should report zero months")
	}
}

func TestStoreDriverHelpers(t *testing.T) {
	if !StoreDriverSQLite.IsSQL() || !StoreDriverPostgres.IsSQL() {
		t.Fatal("expected sql drivers to report IsSQL")
	}
	if StoreDriverMongo.IsSQL() {
		t.Fatal("mongo is not a sql driver")
	}
	if _, err := ParseStoreDriver("mysql"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
