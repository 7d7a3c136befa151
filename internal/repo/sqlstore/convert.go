package sqlstore

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/pkg/db/models"
)

func vendorFromModel(m models.User) marketplace.Vendor {
	return marketplace.Vendor{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Contact:   m.Contact,
		CreatedAt: m.CreatedAt,
	}
}

func storeFromModel(m models.Store) marketplace.Store {
	return marketplace.Store{
		ID:        m.ID,
		Name:      m.StoreName,
		Location:  m.Location,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func productFromModel(m models.Product) marketplace.Product {
	return marketplace.Product{
		ID:       m.ID,
		Title:    m.Title,
		Price:    m.Price,
		Quantity: m.Quantity,
		StoreID:  m.StoreID,
		Images:   []string(m.Images),
	}
}

func orderFromModel(m models.Order) marketplace.Order {
	items := make([]marketplace.LineItem, 0, len(m.LineItems))
	for _, li := range m.LineItems {
		items = append(items, marketplace.LineItem{
			StoreID:  li.StoreID,
			Title:    li.Title,
			Quantity: li.Quantity,
			Price:    li.Price,
			Total:    li.Total,
		})
	}
	var total float64
	if m.Total != nil {
		total = *m.Total
	}
	return marketplace.Order{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		City:      m.City,
		Total:     total,
		Date:      m.OrderedAt,
		Items:     items,
	}
}

func userModel(v marketplace.Vendor) models.User {
	return models.User{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		Contact:   v.Contact,
		CreatedAt: v.CreatedAt,
	}
}

func storeModel(s marketplace.Store) models.Store {
	return models.Store{
		ID:        s.ID,
		UserID:    s.UserID,
		StoreName: s.Name,
		Location:  s.Location,
		CreatedAt: s.CreatedAt,
	}
}

func categoryModel(c marketplace.Category) models.Category {
	return models.Category{ID: idOrNew(c.ID), StoreID: c.StoreID, Name: c.Name}
}

func productModel(p marketplace.Product) models.Product {
	return models.Product{
		ID:       idOrNew(p.ID),
		StoreID:  p.StoreID,
		Title:    p.Title,
		Price:    p.Price,
		Quantity: p.Quantity,
		Images:   pq.StringArray(append([]string{}, p.Images...)),
	}
}

func orderModel(o marketplace.Order, seq int) models.Order {
	id := idOrNew(o.ID)
	items := make([]models.OrderLineItem, 0, len(o.Items))
	for i, item := range o.Items {
		items = append(items, models.OrderLineItem{
			ID:       uuid.NewString(),
			OrderID:  id,
			Position: i,
			StoreID:  item.StoreID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		})
	}
	total := o.Total
	return models.Order{
		ID:        id,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		City:      o.City,
		Total:     &total,
		OrderedAt: o.Date,
		Seq:       seq,
		LineItems: items,
	}
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
