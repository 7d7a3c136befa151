package models

import "github.com/angelmondragon/multistore-admin/pkg/types"

// Order is a customer checkout. Seq keeps the insertion order stable across
// drivers.
type Order struct {
	ID        string          `gorm:"column:id;primaryKey"`
	FirstName string          `gorm:"column:first_name;not null"`
	LastName  string          `gorm:"column:last_name;not null"`
	Email     string          `gorm:"column:email;not null"`
	Phone     string          `gorm:"column:phone;not null"`
	City      string          `gorm:"column:city;not null"`
	Total     *float64        `gorm:"column:total"`
	OrderedAt types.Timestamp `gorm:"column:ordered_at"`
	Seq       int             `gorm:"column:seq;not null"`
	LineItems []OrderLineItem `gorm:"foreignKey:OrderID;references:ID"`
}

func (Order) TableName() string { return "orders" }
