package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reservabar/reservation-api/internal/api/metrics"
	"github.com/reservabar/reservation-api/internal/api/middleware"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account and directory operations.
type UserHandler struct {
	auth     ports.AuthService
	users    ports.UserService
	throttle ports.LoginThrottle
	schema   ports.SchemaManager
}

func NewUserHandler(auth ports.AuthService, users ports.UserService, throttle ports.LoginThrottle, schema ports.SchemaManager) *UserHandler {
	return &UserHandler{auth: auth, users: users, throttle: throttle, schema: schema}
}

// Create registers a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users/ [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Token authenticates form credentials and returns a bearer token.
//
// @Summary      Login for an access token
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Email address"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Router       /users/token [post]
func (h *UserHandler) Token(c echo.Context) error {
	// OAuth2 password-flow field names: the email travels as "username".
	email := c.FormValue("username")
	password := c.FormValue("password")

	ctx := c.Request().Context()
	if !h.throttle.Allow(ctx, email) {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
	}

	token, _, err := h.auth.Login(ctx, email, password)
	if err != nil {
		h.throttle.RecordFailure(ctx, email)
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	h.throttle.Reset(ctx, email)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the caller's own user record.
//
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/me/ [get]
func (h *UserHandler) Me(c echo.Context) error {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return c.JSON(http.StatusOK, toUserResponse(caller))
}

// Get returns a user by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List returns all users, paginated with skip/limit.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int  false  "Records to skip"
// @Param        limit  query  int  false  "Maximum records to return"
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	users, err := h.users.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Update applies a partial update to a user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "User id"
// @Param        body  body  updateUserRequest  true  "Fields to change"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), id, ports.UserChanges{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateTables creates the database schema. First-run escape hatch, not a
// production operation.
//
// @Summary      Create the database tables
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Router       /users/create-db-tables/ [post]
func (h *UserHandler) CreateTables(c echo.Context) error {
	if err := h.schema.CreateTables(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "database tables created successfully"})
}
