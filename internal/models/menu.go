package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Menu struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"                     json:"id"`
	Name         string          `gorm:"not null"                                     json:"name"`
	Price        decimal.Decimal `gorm:"type:decimal(19,2);not null"                  json:"price"`
	MenuGroupID  uint            `gorm:"index;not null"                               json:"menu_group_id"`
	MenuProducts []MenuProduct   `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"menu_products"`
}

// MenuProduct is owned by its Menu; Seq keeps the request order.
type MenuProduct struct {
	Seq       uint  `gorm:"primaryKey;autoIncrement" json:"seq"`
	MenuID    uint  `gorm:"index;not null"           json:"menu_id"`
	ProductID uint  `gorm:"not null"                 json:"product_id"`
	Quantity  int64 `gorm:"not null"                 json:"quantity"`
}

// NewMenu checks the menu against the resolved products. products must hold
// every product referenced by items.
func NewMenu(name string, price decimal.Decimal, groupID uint, items []MenuProduct, products map[uint]Product) (*Menu, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: menu name required", ErrValidation)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: menu price must be >= 0", ErrValidation)
	}

	sum := decimal.Zero
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
		}
		product, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %w: product %d", ErrValidation, ErrNotFound, item.ProductID)
		}
		sum = sum.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}

	if price.GreaterThan(sum) {
		return nil, fmt.Errorf("%w: menu price %s exceeds sum of products %s", ErrValidation, price, sum)
	}

	return &Menu{
		Name:         name,
		Price:        price,
		MenuGroupID:  groupID,
		MenuProducts: items,
	}, nil
}
