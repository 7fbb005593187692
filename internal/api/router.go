package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kosapp/kos-api/internal/api/handler"
	"github.com/kosapp/kos-api/internal/api/middleware"
	"github.com/kosapp/kos-api/internal/core/domain"
	"github.com/kosapp/kos-api/internal/core/service"
	mongodb "github.com/kosapp/kos-api/internal/infrastructure/db/mongo"
	redisdb "github.com/kosapp/kos-api/internal/infrastructure/db/redis"
	"github.com/kosapp/kos-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("kos"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)
	reportCache := redisdb.NewReportCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, roomRepo, log)
	roomService := service.NewRoomService(roomRepo, paymentRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, roomRepo, userRepo, log)
	reportService := service.NewReportService(roomRepo, paymentRepo, reportCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roomHandler := handler.NewRoomHandler(roomService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reportHandler := handler.NewReportHandler(reportService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, denylist)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	auth := e.Group("", authMiddleware)

	auth.POST("/logout", authHandler.Logout)
	auth.GET("/profile", authHandler.Profile)
	auth.PUT("/profile", authHandler.UpdateProfile)
	auth.POST("/profile/change-password", authHandler.ChangePassword)

	auth.GET("/rooms", roomHandler.List)
	auth.GET("/rooms/statistics/dashboard", roomHandler.Statistics)
	auth.GET("/rooms/:id", roomHandler.Get)
	auth.POST("/rooms", roomHandler.Create, middleware.Authorize(domain.ActionRoomCreate))
	auth.PUT("/rooms/:id", roomHandler.Update, middleware.Authorize(domain.ActionRoomUpdate))
	auth.DELETE("/rooms/:id", roomHandler.Delete, middleware.Authorize(domain.ActionRoomDelete))

	users := auth.Group("/users", middleware.Authorize(domain.ActionUserManage))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	auth.GET("/payments", paymentHandler.List)
	auth.GET("/payments/report/dashboard", paymentHandler.Report, middleware.Authorize(domain.ActionPaymentReport))
	auth.GET("/payments/room/:room_id", paymentHandler.ListByRoom, middleware.Authorize(domain.ActionPaymentReport))
	auth.GET("/payments/:id", paymentHandler.Get)
	auth.POST("/payments", paymentHandler.Create, middleware.Authorize(domain.ActionPaymentCreate))
	auth.PUT("/payments/:id", paymentHandler.Update, middleware.Authorize(domain.ActionPaymentUpdate))

	auth.GET("/reports/dashboard", reportHandler.Dashboard, middleware.Authorize(domain.ActionPaymentReport))

	return e
}
