package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name  string          `gorm:"not null"                    json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"price"`
}

func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name required", ErrValidation)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: product price must be >= 0", ErrValidation)
	}
	return &Product{Name: name, Price: price}, nil
}

type MenuGroup struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null"                 json:"name"`
}

func NewMenuGroup(name string) (*MenuGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: menu group name required", ErrValidation)
	}
	return &MenuGroup{Name: name}, nil
}
