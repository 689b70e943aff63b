package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/kitchenpos/internal/models"
)

// CreateMenu inserts the menu and its line items in one transaction.
func (r *GormRepo) CreateMenu(ctx context.Context, menu *models.Menu) error {
	return r.Atomic(ctx, func(ctx context.Context) error {
		return r.conn(ctx).Create(menu).Error
	})
}

func (r *GormRepo) ListMenus(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.conn(ctx).
		Preload("MenuProducts", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Order("id ASC").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *GormRepo) FindMenuIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found := []uint{}
	ids = uniq(ids)
	if len(ids) == 0 {
		return found, nil
	}
	if err := r.conn(ctx).Model(&models.Menu{}).Where("id IN ?", ids).Order("id ASC").Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}
