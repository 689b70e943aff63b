package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/kitchenpos/internal/qrcode"
	"github.com/Skotchmaster/kitchenpos/internal/service"
	"github.com/Skotchmaster/kitchenpos/internal/transport"
	"github.com/Skotchmaster/kitchenpos/pkg/logging"
)

type TableHTTP struct {
	Tables *service.TableService
	Groups *service.TableGroupService
	QR     *qrcode.TableGenerator
}

func (h *TableHTTP) CreateTable(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "table.create_table")

	req := transport.CreateOrderTableRequest{}
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_table_error", "invalid body", err)
	}
	empty := true
	if req.Empty != nil {
		empty = *req.Empty
	}

	table, err := h.Tables.CreateTable(ctx, req.NumberOfGuests, empty)
	if err != nil {
		return fail(l, "create_table_error", err)
	}

	l.Info("create_table_success", "order_table_id", table.ID)
	return c.JSON(http.StatusCreated, table)
}

func (h *TableHTTP) ListTables(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "table.list_tables")

	tables, err := h.Tables.ListTables(ctx)
	if err != nil {
		return fail(l, "list_tables_error", err)
	}
	return c.JSON(http.StatusOK, tables)
}

func (h *TableHTTP) ChangeEmpty(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "table.change_empty")

	id, err := parseID(c)
	if err != nil {
		return badRequest(l, "change_empty_error", err.Error(), err)
	}
	var req transport.ChangeEmptyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "change_empty_error", "invalid body", err)
	}
	if req.Empty == nil {
		return badRequest(l, "change_empty_error", "empty required", errors.New("empty missing"))
	}

	table, err := h.Tables.ChangeEmpty(ctx, id, *req.Empty)
	if err != nil {
		return fail(l.With("order_table_id", id), "change_empty_error", err)
	}

	l.Info("change_empty_success", "order_table_id", id, "empty", table.Empty)
	return c.JSON(http.StatusOK, table)
}

func (h *TableHTTP) ChangeNumberOfGuests(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "table.change_number_of_guests")

	id, err := parseID(c)
	if err != nil {
		return badRequest(l, "change_number_of_guests_error", err.Error(), err)
	}
	var req transport.ChangeNumberOfGuestsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "change_number_of_guests_error", "invalid body", err)
	}
	if req.NumberOfGuests == nil {
		return badRequest(l, "change_number_of_guests_error", "number_of_guests required", errors.New("number_of_guests missing"))
	}

	table, err := h.Tables.ChangeNumberOfGuests(ctx, id, *req.NumberOfGuests)
	if err != nil {
		return fail(l.With("order_table_id", id), "change_number_of_guests_error", err)
	}

	l.Info("change_number_of_guests_success", "order_table_id", id, "number_of_guests", table.NumberOfGuests)
	return c.JSON(http.StatusOK, table)
}

func (h *TableHTTP) QRCode(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "table.qrcode")

	id, err := parseID(c)
	if err != nil {
		return badRequest(l, "table_qrcode_error", err.Error(), err)
	}
	if _, err := h.Tables.GetTable(ctx, id); err != nil {
		return fail(l, "table_qrcode_error", err)
	}

	png, err := h.QR.Generate(id)
	if err != nil {
		return fail(l, "table_qrcode_error", err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *TableHTTP) CreateTableGroup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "table_group.create_table_group")

	var req transport.CreateTableGroupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_table_group_error", "invalid body", err)
	}

	group, err := h.Groups.CreateTableGroup(ctx, req.OrderTableIDs)
	if err != nil {
		return fail(l, "create_table_group_error", err)
	}

	l.Info("create_table_group_success", "table_group_id", group.ID)
	return c.JSON(http.StatusCreated, group)
}

func (h *TableHTTP) Ungroup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "table_group.ungroup")

	id, err := parseID(c)
	if err != nil {
		return badRequest(l, "ungroup_error", err.Error(), err)
	}

	if err := h.Groups.Ungroup(ctx, id); err != nil {
		return fail(l.With("table_group_id", id), "ungroup_error", err)
	}

	l.Info("ungroup_success", "table_group_id", id)
	return c.NoContent(http.StatusNoContent)
}
