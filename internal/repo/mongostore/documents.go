package mongostore

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/pkg/types"
)

type userDocument struct {
	UserID    string          `bson:"userID"`
	FirstName string          `bson:"firstName"`
	LastName  string          `bson:"lastName"`
	Email     string          `bson:"email"`
	Contact   string          `bson:"contact,omitempty"`
	CreatedAt types.Timestamp `bson:"createdAt,omitempty"`
}

func (d userDocument) toVendor() marketplace.Vendor {
	return marketplace.Vendor{
		ID:        d.UserID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Contact:   d.Contact,
		CreatedAt: d.CreatedAt,
	}
}

type storeDocument struct {
	StoreID   string          `bson:"storeID"`
	StoreName string          `bson:"storeName"`
	Location  string          `bson:"location,omitempty"`
	UserID    string          `bson:"userID"`
	CreatedAt types.Timestamp `bson:"createdAt,omitempty"`
}

func (d storeDocument) toStore() marketplace.Store {
	return marketplace.Store{
		ID:        d.StoreID,
		Name:      d.StoreName,
		Location:  d.Location,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
	}
}

type categoryDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	StoreID string             `bson:"storeID"`
	Name    string             `bson:"name"`
}

type itemDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Price    float64            `bson:"price"`
	Quantity int                `bson:"quantity"`
	StoreID  string             `bson:"storeID"`
	Images   []string           `bson:"images,omitempty"`
}

func (d itemDocument) toProduct() marketplace.Product {
	return marketplace.Product{
		ID:       hexOrEmpty(d.ID),
		Title:    d.Title,
		Price:    d.Price,
		Quantity: d.Quantity,
		StoreID:  d.StoreID,
		Images:   d.Images,
	}
}

type cartItemDocument struct {
	StoreID  string   `bson:"storeID"`
	Title    string   `bson:"title"`
	Quantity int      `bson:"quantity"`
	Price    *float64 `bson:"price,omitempty"`
	Total    *float64 `bson:"total,omitempty"`
}

type orderDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	City      string             `bson:"city,omitempty"`
	Total     float64            `bson:"total"`
	Date      types.Timestamp    `bson:"date,omitempty"`
	CartItems []cartItemDocument `bson:"cartItems"`
}

func (d orderDocument) toOrder() marketplace.Order {
	items := make([]marketplace.LineItem, 0, len(d.CartItems))
	for _, item := range d.CartItems {
		items = append(items, marketplace.LineItem{
			StoreID:  item.StoreID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		})
	}
	return marketplace.Order{
		ID:        hexOrEmpty(d.ID),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		City:      d.City,
		Total:     d.Total,
		Date:      d.Date,
		Items:     items,
	}
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

// objectIDOrNew keeps a caller supplied hex id and mints one otherwise.
func objectIDOrNew(id string) primitive.ObjectID {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return primitive.NewObjectID()
}
