package reports

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

// money converts a stored amount into an exact decimal.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// LineRevenue is the revenue of one cart line: its stored total when present,
// otherwise price times quantity. Missing values count as zero.
func LineRevenue(item marketplace.LineItem) decimal.Decimal {
	if item.Total != nil {
		return money(*item.Total)
	}
	if item.Price == nil {
		return decimal.Zero
	}
	return money(*item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// TotalRevenue sums the totals of all orders.
func TotalRevenue(orders []marketplace.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, order := range orders {
		sum = sum.Add(money(order.Total))
	}
	return sum
}
