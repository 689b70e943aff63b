package repo

import (
	"context"

	"github.com/Skotchmaster/kitchenpos/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.conn(ctx).Create(product).Error
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.conn(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) FindProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	products := []models.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.conn(ctx).Where("id IN ?", uniq(ids)).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) CreateMenuGroup(ctx context.Context, group *models.MenuGroup) error {
	return r.conn(ctx).Create(group).Error
}

func (r *GormRepo) ListMenuGroups(ctx context.Context) ([]models.MenuGroup, error) {
	var groups []models.MenuGroup
	if err := r.conn(ctx).Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GormRepo) MenuGroupExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.MenuGroup{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
