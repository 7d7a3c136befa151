package repo

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID      string `gorm:"primaryKey"`
	StoreID string
	Stock   int
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := conn.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	rows := []widget{
		{ID: "w1", StoreID: "s1", Stock: 0},
		{ID: "w2", StoreID: "s1", Stock: 4},
		{ID: "w3", StoreID: "s2", Stock: 0},
		{ID: "w4", StoreID: "s3", Stock: 1},
	}
	if err := conn.Create(&rows).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return conn
}

func TestNewBaseStoresConnection(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	if base.db != db {
		t.Fatalf("expected base db to match provided connection")
	}
}

func TestBaseDB_BindsContext(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	withCtx := base.DB(ctx)

	if withCtx == nil {
		t.Fatalf("expected non-nil DB when context provided")
	}
	if withCtx.Statement == nil {
		t.Fatalf("expected statement created after WithContext")
	}
	if withCtx.Statement.Context != ctx {
		t.Fatalf("expected context to flow through, got %v", withCtx.Statement.Context)
	}

	withoutCtx := base.DB(nil)
	if withoutCtx != db {
		t.Fatalf("expected nil context to return raw connection")
	}
}

func TestBaseCount(t *testing.T) {
	base := NewBase(newTestDB(t))
	ctx := context.Background()

	all, err := base.Count(ctx, &widget{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if all != 4 {
		t.Fatalf("expected 4 widgets got %d", all)
	}

	empty, err := base.Count(ctx, &widget{}, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("stock <= ?", 0)
	}, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("store_id = ?", "s1")
	})
	if err != nil {
		t.Fatalf("scoped count: %v", err)
	}
	if empty != 1 {
		t.Fatalf("expected 1 empty widget in s1 got %d", empty)
	}
}

func TestDeleteIn(t *testing.T) {
	db := newTestDB(t)

	n, err := DeleteIn(db, &widget{}, "store_id", []string{"s1", "s3"})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 deleted got %d", n)
	}

	n, err = DeleteIn(db, &widget{}, "store_id", nil)
	if err != nil || n != 0 {
		t.Fatalf("expected empty delete to be a no-op, got %d, %v", n, err)
	}

	var left int64
	db.Model(&widget{}).Count(&left)
	if left != 1 {
		t.Fatalf("expected 1 widget left got %d", left)
	}
}
