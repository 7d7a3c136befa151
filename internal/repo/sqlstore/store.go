// Package sqlstore serves the marketplace collections from a relational
// database through GORM. Postgres and SQLite share one schema.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/internal/repo"
	"github.com/angelmondragon/multistore-admin/pkg/db"
	"github.com/angelmondragon/multistore-admin/pkg/db/models"
)

// Store implements the admin repository over the SQL schema.
type Store struct {
	repo.Base
	client *db.Client
}

// New binds the store to a database client.
func New(client *db.Client) (*Store, error) {
	if client == nil {
		return nil, errors.New("db client required")
	}
	return &Store{Base: repo.NewBase(client.DB()), client: client}, nil
}

// Orders loads every order with its lines in cart order.
func (s *Store) Orders(ctx context.Context) ([]marketplace.Order, error) {
	var rows []models.Order
	err := s.DB(ctx).
		Preload("LineItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Order("seq ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	out := make([]marketplace.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, orderFromModel(row))
	}
	return out, nil
}

// Stores loads every store row.
func (s *Store) Stores(ctx context.Context) ([]marketplace.Store, error) {
	var rows []models.Store
	if err := s.DB(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find stores: %w", err)
	}
	out := make([]marketplace.Store, 0, len(rows))
	for _, row := range rows {
		out = append(out, storeFromModel(row))
	}
	return out, nil
}

// Vendors loads every user. The password hash column is never selected.
func (s *Store) Vendors(ctx context.Context) ([]marketplace.Vendor, error) {
	var rows []models.User
	err := s.DB(ctx).
		Select("id", "first_name", "last_name", "email", "contact", "created_at").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	out := make([]marketplace.Vendor, 0, len(rows))
	for _, row := range rows {
		out = append(out, vendorFromModel(row))
	}
	return out, nil
}

// Products loads every catalog item.
func (s *Store) Products(ctx context.Context) ([]marketplace.Product, error) {
	var rows []models.Product
	if err := s.DB(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	out := make([]marketplace.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, productFromModel(row))
	}
	return out, nil
}

func (s *Store) CountVendors(ctx context.Context) (int64, error) {
	return s.Count(ctx, &models.User{})
}

func (s *Store) CountStores(ctx context.Context) (int64, error) {
	return s.Count(ctx, &models.Store{})
}

func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	return s.Count(ctx, &models.Category{})
}

// CountOutOfStock counts products with no units on hand.
func (s *Store) CountOutOfStock(ctx context.Context) (int64, error) {
	return s.Count(ctx, &models.Product{}, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("quantity <= ?", 0)
	})
}

// DeleteProduct removes one product row.
func (s *Store) DeleteProduct(ctx context.Context, productID string) (bool, error) {
	res := s.DB(ctx).Where("id = ?", productID).Delete(&models.Product{})
	if res.Error != nil {
		return false, fmt.Errorf("delete product: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteVendor removes the user and every store it owns together with the
// stores' categories, products and referencing orders in one transaction.
func (s *Store) DeleteVendor(ctx context.Context, userID string) (marketplace.VendorDeletion, error) {
	var result marketplace.VendorDeletion
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return fmt.Errorf("delete user: %w", res.Error)
		}
		result.Users = res.RowsAffected

		var storeIDs []string
		if err := tx.Model(&models.Store{}).Where("user_id = ?", userID).Pluck("id", &storeIDs).Error; err != nil {
			return fmt.Errorf("find owned stores: %w", err)
		}
		if len(storeIDs) == 0 {
			return nil
		}

		var orderIDs []string
		if err := tx.Model(&models.OrderLineItem{}).
			Distinct("order_id").
			Where("store_id IN ?", storeIDs).
			Pluck("order_id", &orderIDs).Error; err != nil {
			return fmt.Errorf("find referencing orders: %w", err)
		}

		steps := []struct {
			name   string
			model  any
			column string
			values []string
			count  *int64
		}{
			{"stores", &models.Store{}, "id", storeIDs, &result.Stores},
			{"categories", &models.Category{}, "store_id", storeIDs, &result.Categories},
			{"products", &models.Product{}, "store_id", storeIDs, &result.Products},
			// SQLite leaves foreign keys off by default, so lines go before orders.
			{"order lines", &models.OrderLineItem{}, "order_id", orderIDs, nil},
			{"orders", &models.Order{}, "id", orderIDs, &result.Orders},
		}
		for _, step := range steps {
			n, err := repo.DeleteIn(tx, step.model, step.column, step.values)
			if err != nil {
				return fmt.Errorf("delete %s: %w", step.name, err)
			}
			if step.count != nil {
				*step.count = n
			}
		}
		return nil
	})
	if err != nil {
		return marketplace.VendorDeletion{}, err
	}
	return result, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
