package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/kitchenpos/internal/models"
)

func (r *GormRepo) CreateOrderTable(ctx context.Context, table *models.OrderTable) error {
	return r.conn(ctx).Create(table).Error
}

func (r *GormRepo) ListOrderTables(ctx context.Context) ([]models.OrderTable, error) {
	var tables []models.OrderTable
	if err := r.conn(ctx).Order("id ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *GormRepo) FindOrderTableByID(ctx context.Context, id uint) (*models.OrderTable, error) {
	var table models.OrderTable
	if err := r.conn(ctx).First(&table, id).Error; err != nil {
		return nil, notFound(err, "order table", id)
	}
	return &table, nil
}

// FindOrderTablesByIDs ignores duplicates and unknown ids; callers compare
// lengths to detect the latter.
func (r *GormRepo) FindOrderTablesByIDs(ctx context.Context, ids []uint) ([]models.OrderTable, error) {
	tables := []models.OrderTable{}
	ids = uniq(ids)
	if len(ids) == 0 {
		return tables, nil
	}
	if err := r.conn(ctx).Where("id IN ?", ids).Order("id ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// SaveOrderTables writes every column, so a nil TableGroupID is stored as NULL.
func (r *GormRepo) SaveOrderTables(ctx context.Context, tables ...models.OrderTable) error {
	return r.Atomic(ctx, func(ctx context.Context) error {
		for i := range tables {
			if err := r.conn(ctx).Save(&tables[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) CreateTableGroup(ctx context.Context, group *models.TableGroup) error {
	if group.CreatedDate.IsZero() {
		group.CreatedDate = time.Now().UTC()
	}
	return r.conn(ctx).Omit(clause.Associations).Create(group).Error
}

func (r *GormRepo) FindTableGroupByID(ctx context.Context, id uint) (*models.TableGroup, error) {
	var group models.TableGroup
	err := r.conn(ctx).
		Preload("OrderTables", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&group, id).Error
	if err != nil {
		return nil, notFound(err, "table group", id)
	}
	return &group, nil
}
