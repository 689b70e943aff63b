package service

import (
	"context"

	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/internal/models"
	"github.com/Skotchmaster/kitchenpos/internal/paging"
)

type Transactor interface {
	Atomic(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	FindProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
}

type MenuGroupRepository interface {
	CreateMenuGroup(ctx context.Context, group *models.MenuGroup) error
	ListMenuGroups(ctx context.Context) ([]models.MenuGroup, error)
	MenuGroupExists(ctx context.Context, id uint) (bool, error)
}

type MenuRepository interface {
	Transactor
	ProductRepository
	MenuGroupRepository
	CreateMenu(ctx context.Context, menu *models.Menu) error
	ListMenus(ctx context.Context) ([]models.Menu, error)
}

type TableRepository interface {
	Transactor
	CreateOrderTable(ctx context.Context, table *models.OrderTable) error
	ListOrderTables(ctx context.Context) ([]models.OrderTable, error)
	FindOrderTableByID(ctx context.Context, id uint) (*models.OrderTable, error)
	FindOrderTablesByIDs(ctx context.Context, ids []uint) ([]models.OrderTable, error)
	SaveOrderTables(ctx context.Context, tables ...models.OrderTable) error
	ExistsOrdersByTableIDsAndStatuses(ctx context.Context, tableIDs []uint, statuses []models.OrderStatus) (bool, error)
}

type TableGroupRepository interface {
	TableRepository
	CreateTableGroup(ctx context.Context, group *models.TableGroup) error
	FindTableGroupByID(ctx context.Context, id uint) (*models.TableGroup, error)
}

type OrderRepository interface {
	Transactor
	FindMenuIDs(ctx context.Context, ids []uint) ([]uint, error)
	FindOrderTableByID(ctx context.Context, id uint) (*models.OrderTable, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context, page paging.Page) ([]models.Order, error)
	FindOrderByID(ctx context.Context, id uint) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, order *models.Order) error
}

type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}
