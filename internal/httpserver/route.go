package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/Skotchmaster/kitchenpos/pkg/middleware/auth"
	"github.com/Skotchmaster/kitchenpos/pkg/middleware/csrf"
	"github.com/Skotchmaster/kitchenpos/pkg/tokens"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	TableHandler   *TableHTTP
	OrderHandler   *OrderHTTP
	JWTSecret      []byte
	Ready          func() error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	guard := middleware.NewGuard(d.JWTSecret)
	api := e.Group("/api", csrf.Middleware(csrf.DefaultConfig()), guard.RequireAuth)

	api.GET("/products", d.CatalogHandler.ListProducts)
	api.GET("/menu-groups", d.CatalogHandler.ListMenuGroups)
	api.GET("/menus", d.CatalogHandler.ListMenus)

	admin := api.Group("", middleware.RequireRole(tokens.RoleAdmin))
	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.POST("/menu-groups", d.CatalogHandler.CreateMenuGroup)
	admin.POST("/menus", d.CatalogHandler.CreateMenu)

	api.POST("/tables", d.TableHandler.CreateTable)
	api.GET("/tables", d.TableHandler.ListTables)
	api.PUT("/tables/:id/empty", d.TableHandler.ChangeEmpty)
	api.PUT("/tables/:id/number-of-guests", d.TableHandler.ChangeNumberOfGuests)
	api.GET("/tables/:id/qrcode", d.TableHandler.QRCode)

	api.POST("/table-groups", d.TableHandler.CreateTableGroup)
	api.DELETE("/table-groups/:id", d.TableHandler.Ungroup)

	api.POST("/orders", d.OrderHandler.CreateOrder)
	api.GET("/orders", d.OrderHandler.ListOrders)
	api.PUT("/orders/:id/order-status", d.OrderHandler.ChangeOrderStatus)
}
