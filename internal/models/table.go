package models

import (
	"fmt"
	"time"
)

type OrderTable struct {
	ID             uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	TableGroupID   *uint `gorm:"index"                    json:"table_group_id"`
	NumberOfGuests int   `gorm:"not null;default:0"       json:"number_of_guests"`
	Empty          bool  `gorm:"not null"                 json:"empty"`
}

func NewOrderTable(numberOfGuests int, empty bool) (*OrderTable, error) {
	if numberOfGuests < 0 {
		return nil, fmt.Errorf("%w: number of guests must be >= 0", ErrValidation)
	}
	return &OrderTable{NumberOfGuests: numberOfGuests, Empty: empty}, nil
}

func (t *OrderTable) Grouped() bool {
	return t.TableGroupID != nil
}

// ChangeEmpty does not know about orders; callers check for active orders.
func (t *OrderTable) ChangeEmpty(empty bool) error {
	if t.Grouped() {
		return fmt.Errorf("%w: table %d belongs to table group %d", ErrValidation, t.ID, *t.TableGroupID)
	}
	t.Empty = empty
	return nil
}

func (t *OrderTable) ChangeNumberOfGuests(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: number of guests must be >= 0", ErrValidation)
	}
	if t.Empty {
		return fmt.Errorf("%w: table %d is empty", ErrValidation, t.ID)
	}
	t.NumberOfGuests = n
	return nil
}

func (t *OrderTable) joinGroup(groupID uint) {
	id := groupID
	t.TableGroupID = &id
	t.Empty = false
}

func (t *OrderTable) leaveGroup() {
	t.TableGroupID = nil
}

type TableGroup struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedDate time.Time    `gorm:"not null"                 json:"created_date"`
	OrderTables []OrderTable `gorm:"foreignKey:TableGroupID"  json:"order_tables"`
}

const MinGroupSize = 2

// CheckGroupable validates that tables can form a new group.
func CheckGroupable(tables []OrderTable) error {
	if len(tables) < MinGroupSize {
		return fmt.Errorf("%w: table group needs at least %d tables", ErrValidation, MinGroupSize)
	}
	for _, t := range tables {
		if t.Grouped() {
			return fmt.Errorf("%w: table %d already belongs to table group %d", ErrConflict, t.ID, *t.TableGroupID)
		}
		if !t.Empty {
			return fmt.Errorf("%w: table %d is not empty", ErrConflict, t.ID)
		}
	}
	return nil
}

// Attach links tables to a persisted group: each gets the group id and is
// marked occupied.
func (g *TableGroup) Attach(tables []OrderTable) {
	for i := range tables {
		tables[i].joinGroup(g.ID)
	}
	g.OrderTables = tables
}

// Ungroup clears the back-reference on every member; the empty flag is kept.
func (g *TableGroup) Ungroup() {
	for i := range g.OrderTables {
		g.OrderTables[i].leaveGroup()
	}
}

func (g *TableGroup) TableIDs() []uint {
	ids := make([]uint, 0, len(g.OrderTables))
	for _, t := range g.OrderTables {
		ids = append(ids, t.ID)
	}
	return ids
}
