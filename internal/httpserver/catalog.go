package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/kitchenpos/internal/models"
	"github.com/Skotchmaster/kitchenpos/internal/service"
	"github.com/Skotchmaster/kitchenpos/internal/transport"
	"github.com/Skotchmaster/kitchenpos/pkg/logging"
)

type CatalogHTTP struct {
	Products   *service.ProductService
	MenuGroups *service.MenuGroupService
	Menus      *service.MenuService
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_product_error", "invalid body", err)
	}
	if req.Price == nil {
		return badRequest(l, "create_product_error", "price required", errors.New("price missing"))
	}

	product, err := h.Products.CreateProduct(ctx, req.Name, *req.Price)
	if err != nil {
		return fail(l, "create_product_error", err)
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list_products")

	products, err := h.Products.ListProducts(ctx)
	if err != nil {
		return fail(l, "list_products_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHTTP) CreateMenuGroup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu_group.create_menu_group")

	var req transport.CreateMenuGroupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_menu_group_error", "invalid body", err)
	}

	group, err := h.MenuGroups.CreateMenuGroup(ctx, req.Name)
	if err != nil {
		return fail(l, "create_menu_group_error", err)
	}

	l.Info("create_menu_group_success", "menu_group_id", group.ID)
	return c.JSON(http.StatusCreated, group)
}

func (h *CatalogHTTP) ListMenuGroups(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu_group.list_menu_groups")

	groups, err := h.MenuGroups.ListMenuGroups(ctx)
	if err != nil {
		return fail(l, "list_menu_groups_error", err)
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *CatalogHTTP) CreateMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create_menu")

	var req transport.CreateMenuRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_menu_error", "invalid body", err)
	}
	if req.Price == nil {
		return badRequest(l, "create_menu_error", "price required", errors.New("price missing"))
	}

	items := make([]models.MenuProduct, 0, len(req.MenuProducts))
	for _, mp := range req.MenuProducts {
		items = append(items, models.MenuProduct{ProductID: mp.ProductID, Quantity: mp.Quantity})
	}

	menu, err := h.Menus.CreateMenu(ctx, req.Name, *req.Price, req.MenuGroupID, items)
	if err != nil {
		return fail(l, "create_menu_error", err)
	}

	l.Info("create_menu_success", "menu_id", menu.ID)
	return c.JSON(http.StatusCreated, menu)
}

func (h *CatalogHTTP) ListMenus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list_menus")

	menus, err := h.Menus.ListMenus(ctx)
	if err != nil {
		return fail(l, "list_menus_error", err)
	}
	return c.JSON(http.StatusOK, menus)
}
