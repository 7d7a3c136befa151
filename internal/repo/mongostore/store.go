// Package mongostore reads and maintains the marketplace collections in MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/pkg/config"
	pkgmongo "github.com/angelmondragon/multistore-admin/pkg/mongo"
)

// Store implements the admin repository on top of the two marketplace databases.
type Store struct {
	client     *pkgmongo.Client
	users      *mongo.Collection
	stores     *mongo.Collection
	categories *mongo.Collection
	orders     *mongo.Collection
	items      *mongo.Collection
}

// New binds the configured collections. Items live in the catalog database,
// everything else in the main database.
func New(client *pkgmongo.Client, cfg config.MongoConfig) (*Store, error) {
	if client == nil {
		return nil, errors.New("mongo client required")
	}
	main, catalog := client.Main(), client.Catalog()
	return &Store{
		client:     client,
		users:      main.Collection(cfg.UsersColl),
		stores:     main.Collection(cfg.StoresColl),
		categories: main.Collection(cfg.CategoriesColl),
		orders:     main.Collection(cfg.OrdersColl),
		items:      catalog.Collection(cfg.ItemsColl),
	}, nil
}

// Orders loads every order in natural order.
func (s *Store) Orders(ctx context.Context) ([]marketplace.Order, error) {
	docs, err := findAll[orderDocument](ctx, s.orders, bson.M{}, nil)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	out := make([]marketplace.Order, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toOrder())
	}
	return out, nil
}

// Stores loads every store record.
func (s *Store) Stores(ctx context.Context) ([]marketplace.Store, error) {
	docs, err := findAll[storeDocument](ctx, s.stores, bson.M{}, nil)
	if err != nil {
		return nil, fmt.Errorf("find stores: %w", err)
	}
	out := make([]marketplace.Store, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toStore())
	}
	return out, nil
}

// Vendors loads every user without the password field.
func (s *Store) Vendors(ctx context.Context) ([]marketplace.Vendor, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	docs, err := findAll[userDocument](ctx, s.users, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	out := make([]marketplace.Vendor, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toVendor())
	}
	return out, nil
}

// Products loads every catalog item.
func (s *Store) Products(ctx context.Context) ([]marketplace.Product, error) {
	docs, err := findAll[itemDocument](ctx, s.items, bson.M{}, nil)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	out := make([]marketplace.Product, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toProduct())
	}
	return out, nil
}

// CountVendors counts every user document.
func (s *Store) CountVendors(ctx context.Context) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{})
}

// CountStores counts every store document.
func (s *Store) CountStores(ctx context.Context) (int64, error) {
	return s.stores.CountDocuments(ctx, bson.M{})
}

// CountCategories counts every category document.
func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	return s.categories.CountDocuments(ctx, bson.M{})
}

// CountOutOfStock counts catalog items with no units on hand.
func (s *Store) CountOutOfStock(ctx context.Context) (int64, error) {
	return s.items.CountDocuments(ctx, bson.M{"quantity": bson.M{"$lte": 0}})
}

// DeleteProduct removes one catalog item by its hex object id.
func (s *Store) DeleteProduct(ctx context.Context, productID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return false, fmt.Errorf("%w: %q", marketplace.ErrInvalidID, productID)
	}
	res, err := s.items.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// DeleteVendor removes the user and, for every store it owns, the store with
// its categories, items and the orders that reference it. Mongo offers no
// cross-database transaction here so the steps run in sequence and stop on
// the first failure.
func (s *Store) DeleteVendor(ctx context.Context, userID string) (marketplace.VendorDeletion, error) {
	var result marketplace.VendorDeletion

	res, err := s.users.DeleteOne(ctx, bson.M{"userID": userID})
	if err != nil {
		return result, fmt.Errorf("delete user: %w", err)
	}
	result.Users = res.DeletedCount

	owned, err := findAll[storeDocument](ctx, s.stores, bson.M{"userID": userID}, nil)
	if err != nil {
		return result, fmt.Errorf("find owned stores: %w", err)
	}
	if len(owned) == 0 {
		return result, nil
	}
	storeIDs := make([]string, 0, len(owned))
	for _, store := range owned {
		storeIDs = append(storeIDs, store.StoreID)
	}
	in := bson.M{"$in": storeIDs}

	steps := []struct {
		name   string
		coll   *mongo.Collection
		filter bson.M
		count  *int64
	}{
		{"stores", s.stores, bson.M{"storeID": in}, &result.Stores},
		{"categories", s.categories, bson.M{"storeID": in}, &result.Categories},
		{"items", s.items, bson.M{"storeID": in}, &result.Products},
		{"orders", s.orders, bson.M{"cartItems.storeID": in}, &result.Orders},
	}
	for _, step := range steps {
		res, err := step.coll.DeleteMany(ctx, step.filter)
		if err != nil {
			return result, fmt.Errorf("delete %s: %w", step.name, err)
		}
		*step.count = res.DeletedCount
	}
	return result, nil
}

// Ping checks the cluster connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	var findOpts []*options.FindOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}
	cursor, err := coll.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
