package enums

import (
	"fmt"
	"strings"
)

// OrderTrendRange is the lookback window accepted by the orders trend report.
type OrderTrendRange string

const (
	OrderTrendRange24h OrderTrendRange = "24h"
	OrderTrendRange7d  OrderTrendRange = "7d"
	OrderTrendRange30d OrderTrendRange = "30d"
	OrderTrendRange3m  OrderTrendRange = "3m"
	OrderTrendRange1y  OrderTrendRange = "1y"
	OrderTrendRangeAll OrderTrendRange = "all"
)

var validOrderTrendRanges = []OrderTrendRange{
	OrderTrendRange24h,
	OrderTrendRange7d,
	OrderTrendRange30d,
	OrderTrendRange3m,
	OrderTrendRange1y,
	OrderTrendRangeAll,
}

// String implements fmt.Stringer.
func (r OrderTrendRange) String() string {
	return string(r)
}

// IsValid reports whether the value is a known OrderTrendRange.
func (r OrderTrendRange) IsValid() bool {
	for _, candidate := range validOrderTrendRanges {
		if candidate == r {
			return true
		}
	}
	return false
}

// Granularity returns day buckets up to 30 days and month buckets beyond.
func (r OrderTrendRange) Granularity() Granularity {
	switch r {
	case OrderTrendRange24h, OrderTrendRange7d, OrderTrendRange30d:
		return GranularityDay
	default:
		return GranularityMonth
	}
}

// ParseOrderTrendRange converts raw input into an OrderTrendRange.
func ParseOrderTrendRange(value string) (OrderTrendRange, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validOrderTrendRanges {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order trend range %q", value)
}

// RevenueTrendRange is the month window accepted by the revenue trend report.
type RevenueTrendRange string

const (
	RevenueTrendRange3m RevenueTrendRange = "3m"
	RevenueTrendRange6m RevenueTrendRange = "6m"
	RevenueTrendRange1y RevenueTrendRange = "1y"
)

var revenueTrendMonths = map[RevenueTrendRange]int{
	RevenueTrendRange3m: 3,
	RevenueTrendRange6m: 6,
	RevenueTrendRange1y: 12,
}

// String implements fmt.Stringer.
func (r RevenueTrendRange) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RevenueTrendRange.
func (r RevenueTrendRange) IsValid() bool {
	_, ok := revenueTrendMonths[r]
	return ok
}

// Months returns how many calendar months the range covers, or 0 when unknown.
func (r RevenueTrendRange) Months() int {
	return revenueTrendMonths[r]
}

// ParseRevenueTrendRange converts raw input into a RevenueTrendRange.
func ParseRevenueTrendRange(value string) (RevenueTrendRange, error) {
	candidate := RevenueTrendRange(strings.ToLower(strings.TrimSpace(value)))
	if candidate.IsValid() {
		return candidate, nil
	}
	return "", fmt.Errorf("invalid revenue trend range %q", value)
}

// Granularity is the width of a trend bucket.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// String implements fmt.Stringer.
func (g Granularity) String() string {
	return string(g)
}
