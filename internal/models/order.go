package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusCooking    OrderStatus = "COOKING"
	OrderStatusMeal       OrderStatus = "MEAL"
	OrderStatusCompletion OrderStatus = "COMPLETION"
)

// ActiveOrderStatuses block emptying and ungrouping a table.
var ActiveOrderStatuses = []OrderStatus{OrderStatusCooking, OrderStatusMeal}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusCooking, OrderStatusMeal, OrderStatusCompletion:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
	}
}

type Order struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"                      json:"id"`
	OrderTableID   uint            `gorm:"index;not null"                                json:"order_table_id"`
	OrderStatus    OrderStatus     `gorm:"type:varchar(16);index;not null"               json:"order_status"`
	OrderedTime    time.Time       `gorm:"not null"                                      json:"ordered_time"`
	OrderLineItems []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_line_items"`
}

type OrderLineItem struct {
	Seq      uint  `gorm:"primaryKey;autoIncrement" json:"seq"`
	OrderID  uint  `gorm:"index;not null"           json:"order_id"`
	MenuID   uint  `gorm:"not null"                 json:"menu_id"`
	Quantity int64 `gorm:"not null"                 json:"quantity"`
}

// NewOrder starts an order in COOKING. Menu existence is checked by the caller.
func NewOrder(table OrderTable, items []OrderLineItem, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order line items required", ErrValidation)
	}
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
		}
	}
	if table.Empty {
		return nil, fmt.Errorf("%w: table %d is empty", ErrValidation, table.ID)
	}
	return &Order{
		OrderTableID:   table.ID,
		OrderStatus:    OrderStatusCooking,
		OrderedTime:    now,
		OrderLineItems: items,
	}, nil
}

// ChangeStatus allows any transition until COMPLETION, which is terminal.
func (o *Order) ChangeStatus(status OrderStatus) error {
	if o.OrderStatus == OrderStatusCompletion {
		return fmt.Errorf("%w: order %d is already completed", ErrValidation, o.ID)
	}
	o.OrderStatus = status
	return nil
}
