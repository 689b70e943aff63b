package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/kitchenpos/internal/models"
)

type MenuService struct {
	Repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) CreateMenu(ctx context.Context, name string, price decimal.Decimal, groupID uint, items []models.MenuProduct) (*models.Menu, error) {
	var menu *models.Menu
	err := s.Repo.Atomic(ctx, func(ctx context.Context) error {
		ok, err := s.Repo.MenuGroupExists(ctx, groupID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %w: menu group %d", ErrValidation, ErrNotFound, groupID)
		}

		ids := make([]uint, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}
		products, err := s.Repo.FindProductsByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		menu, err = models.NewMenu(name, price, groupID, items, byID)
		if err != nil {
			return err
		}
		return s.Repo.CreateMenu(ctx, menu)
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	return s.Repo.ListMenus(ctx)
}
