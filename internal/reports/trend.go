package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/pkg/enums"
)

// OrderTrendPoint is the order count for one bucket.
type OrderTrendPoint struct {
	Period Period `json:"period"`
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// RevenueTrendPoint is the summed order total for one month.
type RevenueTrendPoint struct {
	Period  Period  `json:"period"`
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// RangeStart returns the inclusive lower bound of a lookback window ending at
// now. The bool is false for the unbounded "all" range.
func RangeStart(rng enums.OrderTrendRange, now time.Time) (time.Time, bool) {
	now = now.UTC()
	switch rng {
	case enums.OrderTrendRange24h:
		return now.Add(-24 * time.Hour), true
	case enums.OrderTrendRange7d:
		return now.AddDate(0, 0, -7), true
	case enums.OrderTrendRange30d:
		return now.AddDate(0, 0, -30), true
	case enums.OrderTrendRange3m:
		return now.AddDate(0, -3, 0), true
	case enums.OrderTrendRange1y:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// InRange reports whether an order is counted by the order trend for rng.
// Orders without a readable date are never in range.
func InRange(order marketplace.Order, rng enums.OrderTrendRange, now time.Time) bool {
	if !order.Date.Valid {
		return false
	}
	start, bounded := RangeStart(rng, now)
	if !bounded {
		return true
	}
	at := order.Date.Time
	return !at.Before(start) && !at.After(now.UTC())
}

// OrderTrend counts orders per bucket over the requested window. Every bucket
// between the window start and now is present, zero or not. For the "all"
// range the window runs from the earliest dated order to the later of now and
// the latest dated order; with no dated orders the result is empty.
func OrderTrend(orders []marketplace.Order, rng enums.OrderTrendRange, now time.Time) []OrderTrendPoint {
	now = now.UTC()
	granularity := rng.Granularity()

	counts := make(map[Period]int)
	var (
		earliest, latest time.Time
		seen             bool
	)
	for _, order := range orders {
		if !InRange(order, rng, now) {
			continue
		}
		at := order.Date.Time
		counts[PeriodOf(at, granularity)]++
		if !seen || at.Before(earliest) {
			earliest = at
		}
		if !seen || at.After(latest) {
			latest = at
		}
		seen = true
	}

	var first, last Period
	if start, bounded := RangeStart(rng, now); bounded {
		first = PeriodOf(start, granularity)
		last = PeriodOf(now, granularity)
	} else {
		if !seen {
			return []OrderTrendPoint{}
		}
		if latest.Before(now) {
			latest = now
		}
		first = PeriodOf(earliest, granularity)
		last = PeriodOf(latest, granularity)
	}

	periods := periodsBetween(first, last)
	points := make([]OrderTrendPoint, 0, len(periods))
	for _, p := range periods {
		points = append(points, OrderTrendPoint{Period: p, Name: p.Label(), Orders: counts[p]})
	}
	return points
}

// RevenueTrend sums order totals per calendar month for the months(rng) months
// ending with the month of now, oldest first. Orders outside those months or
// without a readable date are ignored.
func RevenueTrend(orders []marketplace.Order, rng enums.RevenueTrendRange, now time.Time) []RevenueTrendPoint {
	months := rng.Months()
	if months <= 0 {
		return []RevenueTrendPoint{}
	}

	last := PeriodOf(now, enums.GranularityMonth)
	first := Period{Start: last.Start.AddDate(0, -(months - 1), 0), Granularity: enums.GranularityMonth}

	sums := make(map[Period]decimal.Decimal, months)
	for _, order := range orders {
		if !order.Date.Valid {
			continue
		}
		p := PeriodOf(order.Date.Time, enums.GranularityMonth)
		if first.After(p) || p.After(last) {
			continue
		}
		sums[p] = sums[p].Add(money(order.Total))
	}

	points := make([]RevenueTrendPoint, 0, months)
	for _, p := range periodsBetween(first, last) {
		points = append(points, RevenueTrendPoint{Period: p, Name: p.MonthName(), Revenue: sums[p].InexactFloat64()})
	}
	return points
}
