package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/kitchenpos/internal/models"
)

type ProductService struct {
	Repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*models.Product, error) {
	product, err := models.NewProduct(name, price)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

type MenuGroupService struct {
	Repo MenuGroupRepository
}

func NewMenuGroupService(repo MenuGroupRepository) *MenuGroupService {
	return &MenuGroupService{Repo: repo}
}

func (s *MenuGroupService) CreateMenuGroup(ctx context.Context, name string) (*models.MenuGroup, error) {
	group, err := models.NewMenuGroup(name)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateMenuGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *MenuGroupService) ListMenuGroups(ctx context.Context) ([]models.MenuGroup, error) {
	return s.Repo.ListMenuGroups(ctx)
}
