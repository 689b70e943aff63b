package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/internal/models"
	"github.com/Skotchmaster/kitchenpos/internal/repo"
	"github.com/Skotchmaster/kitchenpos/internal/repo/repotest"
)

var fixedNow = time.Date(2026, 10, 18, 19, 30, 0, 0, time.UTC)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, ev events.Event) error {
	return m.Called(ctx, ev).Error(0)
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(ev events.Event) bool { return ev.Type == eventType })
}

type fixture struct {
	t    *testing.T
	ctx  context.Context
	repo *repo.GormRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, ctx: context.Background(), repo: repotest.NewRepo(t)}
}

func (f *fixture) table(guests int, empty bool) models.OrderTable {
	f.t.Helper()
	table := &models.OrderTable{NumberOfGuests: guests, Empty: empty}
	require.NoError(f.t, f.repo.CreateOrderTable(f.ctx, table))
	return *table
}

func (f *fixture) product(name, price string) models.Product {
	f.t.Helper()
	p := &models.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(f.t, f.repo.CreateProduct(f.ctx, p))
	return *p
}

func (f *fixture) menuGroup(name string) models.MenuGroup {
	f.t.Helper()
	g := &models.MenuGroup{Name: name}
	require.NoError(f.t, f.repo.CreateMenuGroup(f.ctx, g))
	return *g
}

func (f *fixture) menu() models.Menu {
	f.t.Helper()
	g := f.menuGroup("one chicken")
	p := f.product("fried", "16000")
	m := &models.Menu{
		Name:         "fried chicken",
		Price:        decimal.RequireFromString("16000"),
		MenuGroupID:  g.ID,
		MenuProducts: []models.MenuProduct{{ProductID: p.ID, Quantity: 1}},
	}
	require.NoError(f.t, f.repo.CreateMenu(f.ctx, m))
	return *m
}

func (f *fixture) order(tableID, menuID uint, status models.OrderStatus) models.Order {
	f.t.Helper()
	o := &models.Order{
		OrderTableID:   tableID,
		OrderStatus:    status,
		OrderedTime:    fixedNow,
		OrderLineItems: []models.OrderLineItem{{MenuID: menuID, Quantity: 1}},
	}
	require.NoError(f.t, f.repo.CreateOrder(f.ctx, o))
	return *o
}

func (f *fixture) reload(id uint) models.OrderTable {
	f.t.Helper()
	table, err := f.repo.FindOrderTableByID(f.ctx, id)
	require.NoError(f.t, err)
	return *table
}
