package repo

import (
	"context"

	"gorm.io/gorm"
)

// Scope narrows a query before it runs.
type Scope func(*gorm.DB) *gorm.DB

// Base carries the GORM connection shared by the relational marketplace stores.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Count returns how many rows of model match every scope.
func (b Base) Count(ctx context.Context, model any, scopes ...Scope) (int64, error) {
	tx := b.DB(ctx).Model(model)
	for _, scope := range scopes {
		tx = scope(tx)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteIn removes the rows of model whose column holds one of values and
// reports how many went. An empty values list deletes nothing.
func DeleteIn(tx *gorm.DB, model any, column string, values []string) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	res := tx.Where(column+" IN ?", values).Delete(model)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
