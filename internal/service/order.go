package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/internal/models"
	"github.com/Skotchmaster/kitchenpos/internal/paging"
)

type OrderService struct {
	Repo      OrderRepository
	Publisher Publisher
	Now       func() time.Time
}

func NewOrderService(repo OrderRepository, pub Publisher) *OrderService {
	return &OrderService{Repo: repo, Publisher: pub, Now: func() time.Time { return time.Now().UTC() }}
}

type orderCreatedPayload struct {
	OrderID      uint               `json:"order_id"`
	OrderTableID uint               `json:"order_table_id"`
	OrderStatus  models.OrderStatus `json:"order_status"`
}

type orderStatusPayload struct {
	OrderID     uint               `json:"order_id"`
	OrderStatus models.OrderStatus `json:"order_status"`
}

func (s *OrderService) CreateOrder(ctx context.Context, tableID uint, items []models.OrderLineItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order line items required", ErrValidation)
	}

	var order *models.Order
	err := s.Repo.Atomic(ctx, func(ctx context.Context) error {
		menuIDs := make([]uint, 0, len(items))
		for _, item := range items {
			menuIDs = append(menuIDs, item.MenuID)
		}
		menuIDs = distinct(menuIDs)
		found, err := s.Repo.FindMenuIDs(ctx, menuIDs)
		if err != nil {
			return err
		}
		if lost := missing(menuIDs, found); len(lost) > 0 {
			return fmt.Errorf("%w: %w: menus %v", ErrValidation, ErrNotFound, lost)
		}

		table, err := s.Repo.FindOrderTableByID(ctx, tableID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: %w", ErrValidation, err)
			}
			return err
		}

		order, err = models.NewOrder(*table, items, s.Now())
		if err != nil {
			return err
		}
		return s.Repo.CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Publisher, events.New(events.TypeOrderCreated, fmt.Sprint(order.ID), orderCreatedPayload{
		OrderID:      order.ID,
		OrderTableID: order.OrderTableID,
		OrderStatus:  order.OrderStatus,
	}))
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, page paging.Page) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, page)
}

func (s *OrderService) ChangeOrderStatus(ctx context.Context, orderID uint, status string) (*models.Order, error) {
	next, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.Repo.Atomic(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.Repo.FindOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := order.ChangeStatus(next); err != nil {
			return err
		}
		return s.Repo.UpdateOrderStatus(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Publisher, events.New(events.TypeOrderStatusChanged, fmt.Sprint(order.ID), orderStatusPayload{
		OrderID:     order.ID,
		OrderStatus: order.OrderStatus,
	}))
	return order, nil
}
