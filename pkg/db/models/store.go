package models

import "github.com/angelmondragon/multistore-admin/pkg/types"

// Store is a seller storefront owned by one user.
type Store struct {
	ID        string          `gorm:"column:id;primaryKey"`
	UserID    string          `gorm:"column:user_id;not null"`
	StoreName string          `gorm:"column:store_name;not null"`
	Location  string          `gorm:"column:location;not null"`
	CreatedAt types.Timestamp `gorm:"column:created_at"`
}

func (Store) TableName() string { return "stores" }
