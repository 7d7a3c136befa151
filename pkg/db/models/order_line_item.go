package models

// OrderLineItem is one cart entry of an order. Position preserves cart order.
type OrderLineItem struct {
	ID       string   `gorm:"column:id;primaryKey"`
	OrderID  string   `gorm:"column:order_id;not null"`
	Position int      `gorm:"column:position;not null"`
	StoreID  string   `gorm:"column:store_id;not null"`
	Title    string   `gorm:"column:title;not null"`
	Quantity int      `gorm:"column:quantity;not null"`
	Price    *float64 `gorm:"column:price"`
	Total    *float64 `gorm:"column:total"`
}

func (OrderLineItem) TableName() string { return "order_line_items" }
