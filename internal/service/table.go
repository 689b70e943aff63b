package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/kitchenpos/internal/models"
)

type TableService struct {
	Repo TableRepository
}

func NewTableService(repo TableRepository) *TableService {
	return &TableService{Repo: repo}
}

func (s *TableService) CreateTable(ctx context.Context, numberOfGuests int, empty bool) (*models.OrderTable, error) {
	table, err := models.NewOrderTable(numberOfGuests, empty)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateOrderTable(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) ListTables(ctx context.Context) ([]models.OrderTable, error) {
	return s.Repo.ListOrderTables(ctx)
}

func (s *TableService) GetTable(ctx context.Context, id uint) (*models.OrderTable, error) {
	return s.Repo.FindOrderTableByID(ctx, id)
}

func (s *TableService) ChangeEmpty(ctx context.Context, id uint, empty bool) (*models.OrderTable, error) {
	var table *models.OrderTable
	err := s.Repo.Atomic(ctx, func(ctx context.Context) error {
		var err error
		table, err = s.Repo.FindOrderTableByID(ctx, id)
		if err != nil {
			return err
		}
		if err := table.ChangeEmpty(empty); err != nil {
			return err
		}

		active, err := s.Repo.ExistsOrdersByTableIDsAndStatuses(ctx, []uint{id}, models.ActiveOrderStatuses)
		if err != nil {
			return err
		}
		if active {
			return fmt.Errorf("%w: table %d has cooking or meal orders", ErrConflict, id)
		}

		return s.Repo.SaveOrderTables(ctx, *table)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) ChangeNumberOfGuests(ctx context.Context, id uint, numberOfGuests int) (*models.OrderTable, error) {
	if numberOfGuests < 0 {
		return nil, fmt.Errorf("%w: number of guests must be >= 0", ErrValidation)
	}

	var table *models.OrderTable
	err := s.Repo.Atomic(ctx, func(ctx context.Context) error {
		var err error
		table, err = s.Repo.FindOrderTableByID(ctx, id)
		if err != nil {
			return err
		}
		if err := table.ChangeNumberOfGuests(numberOfGuests); err != nil {
			return err
		}
		return s.Repo.SaveOrderTables(ctx, *table)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}
