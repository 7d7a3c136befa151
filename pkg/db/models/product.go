package models

import (
	"github.com/lib/pq"

	"github.com/angelmondragon/multistore-admin/pkg/types"
)

// Product is a catalog item listed by a store.
type Product struct {
	ID        string          `gorm:"column:id;primaryKey"`
	StoreID   string          `gorm:"column:store_id;not null"`
	Title     string          `gorm:"column:title;not null"`
	Price     float64         `gorm:"column:price;not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Images    pq.StringArray  `gorm:"column:images;type:text;not null"`
	CreatedAt types.Timestamp `gorm:"column:created_at"`
}

func (Product) TableName() string { return "products" }
