package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/kitchenpos/internal/models"
	"github.com/Skotchmaster/kitchenpos/internal/paging"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.Atomic(ctx, func(ctx context.Context) error {
		return r.conn(ctx).Create(order).Error
	})
}

func (r *GormRepo) ListOrders(ctx context.Context, page paging.Page) ([]models.Order, error) {
	q := r.conn(ctx).
		Preload("OrderLineItems", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Order("id ASC")
	if page.Limit > 0 {
		q = q.Offset(page.Offset).Limit(page.Limit)
	}

	var orders []models.Order
	err := q.Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) FindOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.conn(ctx).
		Preload("OrderLineItems", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&order, id).Error
	if err != nil {
		return nil, notFound(err, "order", id)
	}
	return &order, nil
}

// UpdateOrderStatus touches only the status column; line items are immutable.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, order *models.Order) error {
	return r.conn(ctx).
		Model(order).
		Omit(clause.Associations).
		Update("order_status", order.OrderStatus).Error
}

func (r *GormRepo) ExistsOrdersByTableIDsAndStatuses(ctx context.Context, tableIDs []uint, statuses []models.OrderStatus) (bool, error) {
	if len(tableIDs) == 0 || len(statuses) == 0 {
		return false, nil
	}
	var count int64
	err := r.conn(ctx).
		Model(&models.Order{}).
		Where("order_table_id IN ? AND order_status IN ?", uniq(tableIDs), statuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
