// Package marketplace holds the records the admin back-office reads from the
// marketplace store. They are storage agnostic: repositories translate their
// own documents or rows into these shapes.
package marketplace

import (
	"strings"

	"github.com/angelmondragon/multistore-admin/pkg/types"
)

// Order is a customer checkout with its cart lines in purchase order.
type Order struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email" validate:"omitempty,email"`
	Phone     string          `json:"phone"`
	City      string          `json:"city"`
	Total     float64         `json:"total"`
	Date      types.Timestamp `json:"date"`
	Items     []LineItem      `json:"cartItems" validate:"dive"`
}

// CustomerName joins the customer's first and last name.
func (o Order) CustomerName() string {
	return joinName(o.FirstName, o.LastName)
}

// LineItem is one cart entry. Price and Total are optional because older
// orders were written without them.
type LineItem struct {
	StoreID  string   `json:"storeID" validate:"required"`
	Title    string   `json:"title"`
	Quantity int      `json:"quantity" validate:"gte=0"`
	Price    *float64 `json:"price,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

// Store is a seller's catalog container, owned by exactly one vendor.
type Store struct {
	ID        string          `json:"storeID" validate:"required"`
	Name      string          `json:"storeName"`
	Location  string          `json:"location"`
	UserID    string          `json:"userID" validate:"required"`
	CreatedAt types.Timestamp `json:"createdAt"`
}

// Vendor is a user acting as a store owner. Credentials are never loaded.
type Vendor struct {
	ID        string          `json:"userID" validate:"required"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email" validate:"omitempty,email"`
	Contact   string          `json:"contact"`
	CreatedAt types.Timestamp `json:"createdAt"`
}

// Name joins the vendor's first and last name.
func (v Vendor) Name() string {
	return joinName(v.FirstName, v.LastName)
}

// Product is a catalog item. Quantity at or below zero means out of stock.
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Price    float64  `json:"price" validate:"gte=0"`
	Quantity int      `json:"quantity"`
	StoreID  string   `json:"storeID" validate:"required"`
	Images   []string `json:"images"`
}

// InStock reports whether the product has units on hand.
func (p Product) InStock() bool {
	return p.Quantity > 0
}

// Category is a store level product grouping. The back-office only counts them.
type Category struct {
	ID      string `json:"id"`
	StoreID string `json:"storeID" validate:"required"`
	Name    string `json:"name"`
}

// VendorDeletion reports how many records a vendor cascade removed per collection.
type VendorDeletion struct {
	Users      int64 `json:"users"`
	Stores     int64 `json:"stores"`
	Categories int64 `json:"categories"`
	Products   int64 `json:"products"`
	Orders     int64 `json:"orders"`
}

// Total sums the removed records.
func (d VendorDeletion) Total() int64 {
	return d.Users + d.Stores + d.Categories + d.Products + d.Orders
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// Dataset is a complete marketplace snapshot. Seeders load it into a store.
type Dataset struct {
	Vendors    []Vendor   `json:"vendors" validate:"dive"`
	Stores     []Store    `json:"stores" validate:"dive"`
	Categories []Category `json:"categories" validate:"dive"`
	Products   []Product  `json:"products" validate:"dive"`
	Orders     []Order    `json:"orders" validate:"dive"`
}

// Size counts every record in the dataset.
func (d Dataset) Size() int {
	return len(d.Vendors) + len(d.Stores) + len(d.Categories) + len(d.Products) + len(d.Orders)
}
