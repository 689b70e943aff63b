package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/kitchenpos/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

type txKey struct{}

// Atomic runs fn in one transaction. Repo calls made with the ctx passed to fn
// join that transaction.
func (r *GormRepo) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (r *GormRepo) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.DB.WithContext(ctx)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.MenuGroup{},
		&models.Menu{},
		&models.MenuProduct{},
		&models.TableGroup{},
		&models.OrderTable{},
		&models.Order{},
		&models.OrderLineItem{},
	)
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", models.ErrNotFound, what, id)
	}
	return err
}

func uniq(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
