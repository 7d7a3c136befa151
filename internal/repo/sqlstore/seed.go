package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/pkg/db"
	"github.com/angelmondragon/multistore-admin/pkg/db/models"
)

const seedBatchSize = 200

// Seed inserts a dataset in one transaction. Orders continue the existing
// sequence so they read back after the rows already stored. progress, when
// set, is called after every table with its name and inserted count.
func (s *Store) Seed(ctx context.Context, data marketplace.Dataset, progress func(table string, n int)) error {
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		users := make([]models.User, 0, len(data.Vendors))
		for _, v := range data.Vendors {
			users = append(users, userModel(v))
		}
		stores := make([]models.Store, 0, len(data.Stores))
		for _, st := range data.Stores {
			stores = append(stores, storeModel(st))
		}
		categories := make([]models.Category, 0, len(data.Categories))
		for _, c := range data.Categories {
			categories = append(categories, categoryModel(c))
		}
		products := make([]models.Product, 0, len(data.Products))
		for _, p := range data.Products {
			products = append(products, productModel(p))
		}

		var maxSeq int
		if err := tx.Model(&models.Order{}).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
			return fmt.Errorf("read order sequence: %w", err)
		}
		orders := make([]models.Order, 0, len(data.Orders))
		for i, o := range data.Orders {
			orders = append(orders, orderModel(o, maxSeq+i+1))
		}

		if err := insert(tx, "users", users, progress); err != nil {
			return err
		}
		if err := insert(tx, "stores", stores, progress); err != nil {
			return err
		}
		if err := insert(tx, "categories", categories, progress); err != nil {
			return err
		}
		if err := insert(tx, "products", products, progress); err != nil {
			return err
		}
		return insert(tx, "orders", orders, progress)
	})
}

func insert[T any](tx *gorm.DB, table string, rows []T, progress func(string, int)) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, seedBatchSize).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			return fmt.Errorf("insert %s: %w: %w", table, marketplace.ErrDuplicate, err)
		}
		return fmt.Errorf("insert %s: %w", table, err)
	}
	if progress != nil {
		progress(table, len(rows))
	}
	return nil
}
