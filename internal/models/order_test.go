package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	occupied := OrderTable{ID: 1, NumberOfGuests: 4}

	tests := []struct {
		name    string
		table   OrderTable
		items   []OrderLineItem
		wantErr error
	}{
		{name: "no line items", table: occupied, wantErr: ErrValidation},
		{name: "negative quantity", table: occupied, items: []OrderLineItem{{MenuID: 1, Quantity: -1}}, wantErr: ErrValidation},
		{name: "empty table", table: OrderTable{ID: 2, Empty: true}, items: []OrderLineItem{{MenuID: 1, Quantity: 1}}, wantErr: ErrValidation},
		{name: "ok", table: occupied, items: []OrderLineItem{{MenuID: 1, Quantity: 2}, {MenuID: 3, Quantity: 0}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			order, err := NewOrder(tt.table, tt.items, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, OrderStatusCooking, order.OrderStatus)
			assert.Equal(t, now, order.OrderedTime)
			assert.Equal(t, tt.table.ID, order.OrderTableID)
			assert.Equal(t, tt.items, order.OrderLineItems)
		})
	}
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Parallel()

	order := &Order{ID: 9, OrderStatus: OrderStatusCooking}

	require.NoError(t, order.ChangeStatus(OrderStatusMeal))
	assert.Equal(t, OrderStatusMeal, order.OrderStatus)

	require.NoError(t, order.ChangeStatus(OrderStatusCooking))
	assert.Equal(t, OrderStatusCooking, order.OrderStatus)

	require.NoError(t, order.ChangeStatus(OrderStatusCompletion))
	assert.Equal(t, OrderStatusCompletion, order.OrderStatus)
}

func TestOrder_ChangeStatus_CompletionIsTerminal(t *testing.T) {
	t.Parallel()

	for _, next := range []OrderStatus{OrderStatusCooking, OrderStatusMeal, OrderStatusCompletion} {
		order := &Order{ID: 9, OrderStatus: OrderStatusCompletion}
		err := order.ChangeStatus(next)
		assert.ErrorIs(t, err, ErrValidation, "transition to %s", next)
		assert.Equal(t, OrderStatusCompletion, order.OrderStatus)
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	st, err := ParseOrderStatus("MEAL")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusMeal, st)

	_, err = ParseOrderStatus("meal")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseOrderStatus("")
	assert.ErrorIs(t, err, ErrValidation)
}
