package models

// Category groups products inside a store.
type Category struct {
	ID      string `gorm:"column:id;primaryKey"`
	StoreID string `gorm:"column:store_id;not null"`
	Name    string `gorm:"column:name;not null"`
}

func (Category) TableName() string { return "categories" }
