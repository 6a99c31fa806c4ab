package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// TableHandler handles HTTP requests for restaurant tables. Reads are open
// to any authenticated user; mutations are admin-only (enforced in the
// router).
type TableHandler struct {
	tables ports.TableService
}

func NewTableHandler(tables ports.TableService) *TableHandler {
	return &TableHandler{tables: tables}
}

type createTableRequest struct {
	TableNumber string `json:"table_number" validate:"required"`
	Capacity    int    `json:"capacity"     validate:"required,gt=0"`
	IsAvailable *bool  `json:"is_available"`
	Location    string `json:"location"`
}

type updateTableRequest struct {
	TableNumber *string `json:"table_number"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gt=0"`
	IsAvailable *bool   `json:"is_available"`
	Location    *string `json:"location"`
}

// Create registers a new table.
//
// @Summary      Create a table
// @Tags         tables
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTableRequest  true  "Table details"
// @Success      201   {object}  domain.Table
// @Failure      400   {object}  errorResponse
// @Router       /tables/ [post]
func (h *TableHandler) Create(c echo.Context) error {
	var req createTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	table, err := h.tables.Create(c.Request().Context(), ports.CreateTableInput{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		IsAvailable: available,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, table)
}

// Get returns a table by id.
//
// @Summary      Get a table
// @Tags         tables
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Table id"
// @Success      200  {object}  domain.Table
// @Failure      404  {object}  errorResponse
// @Router       /tables/{id} [get]
func (h *TableHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	table, err := h.tables.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, table)
}

// List returns all tables, paginated with skip/limit.
//
// @Summary      List tables
// @Tags         tables
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Table
// @Router       /tables/ [get]
func (h *TableHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	tables, err := h.tables.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	if tables == nil {
		tables = []*domain.Table{}
	}
	return c.JSON(http.StatusOK, tables)
}

// Update applies a partial update to a table.
//
// @Summary      Update a table
// @Tags         tables
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Table id"
// @Param        body  body  updateTableRequest  true  "Fields to change"
// @Success      200  {object}  domain.Table
// @Failure      404  {object}  errorResponse
// @Router       /tables/{id} [put]
func (h *TableHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	table, err := h.tables.Update(c.Request().Context(), id, ports.TableChanges{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		IsAvailable: req.IsAvailable,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, table)
}

// Delete removes a table.
//
// @Summary      Delete a table
// @Tags         tables
// @Security     BearerAuth
// @Param        id  path  int  true  "Table id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /tables/{id} [delete]
func (h *TableHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.tables.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
