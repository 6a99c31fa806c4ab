package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/reservabar/reservation-api/docs"
	"github.com/reservabar/reservation-api/internal/api/handler"
	"github.com/reservabar/reservation-api/internal/api/middleware"
	"github.com/reservabar/reservation-api/internal/core/service"
	"github.com/reservabar/reservation-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/reservabar/reservation-api/internal/infrastructure/db/redis"
	"github.com/reservabar/reservation-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("reservabar"))

	// --- Dependencies ---
	tokens, err := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.TTL())
	if err != nil {
		return nil, err
	}
	hasher := service.NewPasswordHasher(0)

	userRepo := postgres.NewUserRepository(db)
	tableRepo := postgres.NewTableRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	promotionRepo := postgres.NewPromotionRepository(db)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, log)
	tableService := service.NewTableService(tableRepo, log)
	reservationService := service.NewReservationService(reservationRepo, tableRepo, userRepo, log)
	promotionService := service.NewPromotionService(promotionRepo, log)

	throttle := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window(), log)
	schema := postgres.NewSchemaManager(db)

	userHandler := handler.NewUserHandler(authService, userService, throttle, schema)
	tableHandler := handler.NewTableHandler(tableService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	promotionHandler := handler.NewPromotionHandler(promotionService)

	auth := middleware.Auth(authService)
	adminOnly := middleware.RequireAdmin()
	selfOrAdmin := middleware.RequireSelfOrAdmin("id")

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/", userHandler.Create)
	users.POST("/token", userHandler.Token)
	users.GET("/me/", userHandler.Me, auth)
	users.GET("/", userHandler.List, auth, adminOnly)
	users.POST("/create-db-tables/", userHandler.CreateTables, auth, adminOnly)
	users.GET("/:id", userHandler.Get, auth, selfOrAdmin)
	users.PUT("/:id", userHandler.Update, auth, selfOrAdmin)
	users.DELETE("/:id", userHandler.Delete, auth, selfOrAdmin)

	// --- Table routes ---
	tables := e.Group("/tables", auth)
	tables.GET("/", tableHandler.List)
	tables.GET("/:id", tableHandler.Get)
	tables.POST("/", tableHandler.Create, adminOnly)
	tables.PUT("/:id", tableHandler.Update, adminOnly)
	tables.DELETE("/:id", tableHandler.Delete, adminOnly)

	// --- Reservation routes (ownership enforced in the service) ---
	reservations := e.Group("/reservations", auth)
	reservations.POST("/", reservationHandler.Create)
	reservations.GET("/", reservationHandler.List)
	reservations.GET("/:id", reservationHandler.Get)
	reservations.PUT("/:id", reservationHandler.Update)
	reservations.DELETE("/:id", reservationHandler.Delete)

	// --- Promotion routes ---
	promotions := e.Group("/promotions", auth)
	promotions.GET("/", promotionHandler.List)
	promotions.GET("/:id", promotionHandler.Get)
	promotions.POST("/", promotionHandler.Create, adminOnly)
	promotions.PUT("/:id", promotionHandler.Update, adminOnly)
	promotions.DELETE("/:id", promotionHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
