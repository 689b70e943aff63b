package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/kitchenpos/internal/models"
	"github.com/Skotchmaster/kitchenpos/internal/paging"
	"github.com/Skotchmaster/kitchenpos/internal/service"
	"github.com/Skotchmaster/kitchenpos/internal/transport"
	"github.com/Skotchmaster/kitchenpos/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_order_error", "invalid body", err)
	}

	items := make([]models.OrderLineItem, 0, len(req.OrderLineItems))
	for _, li := range req.OrderLineItems {
		items = append(items, models.OrderLineItem{MenuID: li.MenuID, Quantity: li.Quantity})
	}

	order, err := h.Svc.CreateOrder(ctx, req.OrderTableID, items)
	if err != nil {
		return fail(l.With("order_table_id", req.OrderTableID), "create_order_error", err)
	}

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	page := paging.FromQuery(c.QueryParam("page"), c.QueryParam("size"))
	orders, err := h.Svc.ListOrders(ctx, page)
	if err != nil {
		return fail(l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) ChangeOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.change_order_status")

	id, err := parseID(c)
	if err != nil {
		return badRequest(l, "change_order_status_error", err.Error(), err)
	}
	var req transport.ChangeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "change_order_status_error", "invalid body", err)
	}

	order, err := h.Svc.ChangeOrderStatus(ctx, id, req.OrderStatus)
	if err != nil {
		return fail(l.With("order_id", id), "change_order_status_error", err)
	}

	l.Info("change_order_status_success", "order_id", id, "order_status", order.OrderStatus)
	return c.JSON(http.StatusOK, order)
}
