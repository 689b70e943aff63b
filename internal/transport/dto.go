package transport

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type CreateMenuGroupRequest struct {
	Name string `json:"name"`
}

type MenuProductRequest struct {
	ProductID uint  `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CreateMenuRequest struct {
	Name         string               `json:"name"`
	Price        *decimal.Decimal     `json:"price"`
	MenuGroupID  uint                 `json:"menu_group_id"`
	MenuProducts []MenuProductRequest `json:"menu_products"`
}

type CreateOrderTableRequest struct {
	NumberOfGuests int   `json:"number_of_guests"`
	Empty          *bool `json:"empty"`
}

type ChangeEmptyRequest struct {
	Empty *bool `json:"empty"`
}

type ChangeNumberOfGuestsRequest struct {
	NumberOfGuests *int `json:"number_of_guests"`
}

type CreateTableGroupRequest struct {
	OrderTableIDs []uint `json:"order_table_ids"`
}

type OrderLineItemRequest struct {
	MenuID   uint  `json:"menu_id"`
	Quantity int64 `json:"quantity"`
}

type CreateOrderRequest struct {
	OrderTableID   uint                   `json:"order_table_id"`
	OrderLineItems []OrderLineItemRequest `json:"order_line_items"`
}

type ChangeOrderStatusRequest struct {
	OrderStatus string `json:"order_status"`
}
