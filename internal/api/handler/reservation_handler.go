package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reservabar/reservation-api/internal/api/metrics"
	"github.com/reservabar/reservation-api/internal/api/middleware"
	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// ReservationHandler handles HTTP requests for bookings. Ownership rules
// live in the service: clients see and mutate only their own reservations.
type ReservationHandler struct {
	reservations ports.ReservationService
}

func NewReservationHandler(reservations ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type createReservationRequest struct {
	UserID          uint      `json:"user_id"` // honoured for admins only
	TableID         uint      `json:"table_id"         validate:"required"`
	ReservationTime time.Time `json:"reservation_time" validate:"required"`
	NumGuests       int       `json:"num_guests"       validate:"required,gt=0"`
	SpecialRequests string    `json:"special_requests"`
}

type updateReservationRequest struct {
	TableID         *uint      `json:"table_id"`
	ReservationTime *time.Time `json:"reservation_time"`
	NumGuests       *int       `json:"num_guests" validate:"omitempty,gt=0"`
	Status          *string    `json:"status"     validate:"omitempty,oneof=pending confirmed cancelled"`
	SpecialRequests *string    `json:"special_requests"`
}

// Create books a table for the caller (or, for admins, any user).
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      201   {object}  domain.Reservation
// @Failure      404   {object}  errorResponse
// @Router       /reservations/ [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.reservations.Create(c.Request().Context(), caller, ports.CreateReservationInput{
		UserID:          req.UserID,
		TableID:         req.TableID,
		ReservationTime: req.ReservationTime,
		NumGuests:       req.NumGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return err
	}

	metrics.ReservationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, res)
}

// Get returns a reservation visible to the caller.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := h.reservations.GetByID(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// List returns the caller's reservations, or all of them for admins.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Reservation
// @Router       /reservations/ [get]
func (h *ReservationHandler) List(c echo.Context) error {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	skip, limit := pagination(c)
	out, err := h.reservations.List(c.Request().Context(), caller, skip, limit)
	if err != nil {
		return err
	}
	if out == nil {
		out = []*domain.Reservation{}
	}
	return c.JSON(http.StatusOK, out)
}

// Update applies a partial update to a reservation.
//
// @Summary      Update a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                       true  "Reservation id"
// @Param        body  body  updateReservationRequest  true  "Fields to change"
// @Success      200  {object}  domain.Reservation
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /reservations/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.reservations.Update(c.Request().Context(), caller, id, ports.ReservationChanges{
		TableID:         req.TableID,
		ReservationTime: req.ReservationTime,
		NumGuests:       req.NumGuests,
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete cancels and removes a reservation.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  int  true  "Reservation id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.reservations.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
