package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
)

// Seed inserts a dataset collection by collection. progress, when set, is
// called after every batch with the collection name and inserted count.
func (s *Store) Seed(ctx context.Context, data marketplace.Dataset, progress func(collection string, n int)) error {
	batches := []struct {
		name string
		coll *mongo.Collection
		docs []any
	}{
		{"users", s.users, vendorDocs(data.Vendors)},
		{"stores", s.stores, storeDocs(data.Stores)},
		{"categories", s.categories, categoryDocs(data.Categories)},
		{"items", s.items, itemDocs(data.Products)},
		{"orders", s.orders, orderDocs(data.Orders)},
	}
	for _, batch := range batches {
		if len(batch.docs) == 0 {
			continue
		}
		res, err := batch.coll.InsertMany(ctx, batch.docs)
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert %s: %w: %w", batch.name, marketplace.ErrDuplicate, err)
		}
		if err != nil {
			return fmt.Errorf("insert %s: %w", batch.name, err)
		}
		if progress != nil {
			progress(batch.name, len(res.InsertedIDs))
		}
	}
	return nil
}

func vendorDocs(vendors []marketplace.Vendor) []any {
	docs := make([]any, 0, len(vendors))
	for _, v := range vendors {
		docs = append(docs, userDocument{
			UserID:    v.ID,
			FirstName: v.FirstName,
			LastName:  v.LastName,
			Email:     v.Email,
			Contact:   v.Contact,
			CreatedAt: v.CreatedAt,
		})
	}
	return docs
}

func storeDocs(stores []marketplace.Store) []any {
	docs := make([]any, 0, len(stores))
	for _, st := range stores {
		docs = append(docs, storeDocument{
			StoreID:   st.ID,
			StoreName: st.Name,
			Location:  st.Location,
			UserID:    st.UserID,
			CreatedAt: st.CreatedAt,
		})
	}
	return docs
}

func categoryDocs(categories []marketplace.Category) []any {
	docs := make([]any, 0, len(categories))
	for _, c := range categories {
		docs = append(docs, categoryDocument{ID: objectIDOrNew(c.ID), StoreID: c.StoreID, Name: c.Name})
	}
	return docs
}

func itemDocs(products []marketplace.Product) []any {
	docs := make([]any, 0, len(products))
	for _, p := range products {
		docs = append(docs, itemDocument{
			ID:       objectIDOrNew(p.ID),
			Title:    p.Title,
			Price:    p.Price,
			Quantity: p.Quantity,
			StoreID:  p.StoreID,
			Images:   p.Images,
		})
	}
	return docs
}

func orderDocs(orders []marketplace.Order) []any {
	docs := make([]any, 0, len(orders))
	for _, o := range orders {
		items := make([]cartItemDocument, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, cartItemDocument{
				StoreID:  item.StoreID,
				Title:    item.Title,
				Quantity: item.Quantity,
				Price:    item.Price,
				Total:    item.Total,
			})
		}
		docs = append(docs, orderDocument{
			ID:        objectIDOrNew(o.ID),
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Email:     o.Email,
			Phone:     o.Phone,
			City:      o.City,
			Total:     o.Total,
			Date:      o.Date,
			CartItems: items,
		})
	}
	return docs
}
