package reports

import (
	"time"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/pkg/types"
)

func ptr[T any](v T) *T {
	return &v
}

func at(value string) types.Timestamp {
	ts, ok := types.ParseTimestamp(value)
	if !ok {
		panic("bad test timestamp " + value)
	}
	return ts
}

func order(id string, total float64, date string, items ...marketplace.LineItem) marketplace.Order {
	o := marketplace.Order{ID: id, Total: total, Items: items}
	if date != "" {
		o.Date = at(date)
	}
	return o
}

func line(storeID, title string, quantity int) marketplace.LineItem {
	return marketplace.LineItem{StoreID: storeID, Title: title, Quantity: quantity}
}

func mustTime(value string) time.Time {
	return at(value).Time
}
