package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// PromotionHandler handles HTTP requests for promotions. Reads are open to
// any authenticated user; mutations are admin-only (enforced in the router).
type PromotionHandler struct {
	promotions ports.PromotionService
}

func NewPromotionHandler(promotions ports.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

type createPromotionRequest struct {
	Name               string    `json:"name"        validate:"required"`
	Description        string    `json:"description"`
	StartDate          time.Time `json:"start_date"  validate:"required"`
	EndDate            time.Time `json:"end_date"    validate:"required"`
	DiscountPercentage int       `json:"discount_percentage" validate:"omitempty,gt=0"`
	Code               string    `json:"code"`
}

type updatePromotionRequest struct {
	Name               *string    `json:"name"`
	Description        *string    `json:"description"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	DiscountPercentage *int       `json:"discount_percentage" validate:"omitempty,gt=0"`
	Code               *string    `json:"code"`
}

// Create publishes a new promotion.
//
// @Summary      Create a promotion
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPromotionRequest  true  "Promotion details"
// @Success      201   {object}  domain.Promotion
// @Failure      400   {object}  errorResponse
// @Router       /promotions/ [post]
func (h *PromotionHandler) Create(c echo.Context) error {
	var req createPromotionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	promo, err := h.promotions.Create(c.Request().Context(), ports.CreatePromotionInput{
		Name:               req.Name,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		DiscountPercentage: req.DiscountPercentage,
		Code:               req.Code,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, promo)
}

// Get returns a promotion by id.
//
// @Summary      Get a promotion
// @Tags         promotions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Promotion id"
// @Success      200  {object}  domain.Promotion
// @Failure      404  {object}  errorResponse
// @Router       /promotions/{id} [get]
func (h *PromotionHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	promo, err := h.promotions.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, promo)
}

// List returns all promotions, paginated with skip/limit.
//
// @Summary      List promotions
// @Tags         promotions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Promotion
// @Router       /promotions/ [get]
func (h *PromotionHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	promos, err := h.promotions.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	if promos == nil {
		promos = []*domain.Promotion{}
	}
	return c.JSON(http.StatusOK, promos)
}

// Update applies a partial update to a promotion.
//
// @Summary      Update a promotion
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                     true  "Promotion id"
// @Param        body  body  updatePromotionRequest  true  "Fields to change"
// @Success      200  {object}  domain.Promotion
// @Failure      404  {object}  errorResponse
// @Router       /promotions/{id} [put]
func (h *PromotionHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePromotionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	promo, err := h.promotions.Update(c.Request().Context(), id, ports.PromotionChanges{
		Name:               req.Name,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		DiscountPercentage: req.DiscountPercentage,
		Code:               req.Code,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, promo)
}

// Delete removes a promotion.
//
// @Summary      Delete a promotion
// @Tags         promotions
// @Security     BearerAuth
// @Param        id  path  int  true  "Promotion id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.promotions.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
