package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AlexMorrow239/zomma-prototype/internal/api/handler"
	"github.com/AlexMorrow239/zomma-prototype/internal/api/middleware"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/service"
	mongodb "github.com/AlexMorrow239/zomma-prototype/internal/infrastructure/db/mongo"
	redisdb "github.com/AlexMorrow239/zomma-prototype/internal/infrastructure/db/redis"
	"github.com/AlexMorrow239/zomma-prototype/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notification dispatcher is constructed by the caller so its worker pool
// can be started and drained independently of the HTTP server lifecycle.
func NewRouter(db *mongo.Database, rdb *goredis.Client, dispatcher service.NotificationDispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	e.Binder = &handler.StrictBinder{}
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsProduction())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	prospectRepo := mongodb.NewProspectRepository(db)
	recipientRepo := mongodb.NewRecipientRepository(db)

	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxFailures, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, 24*time.Hour, log)
	userService := service.NewUserService(userRepo, log)
	prospectService := service.NewProspectService(prospectRepo, dispatcher, log)
	recipientService := service.NewRecipientService(recipientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	prospectHandler := handler.NewProspectHandler(prospectService)
	recipientHandler := handler.NewRecipientHandler(recipientService)

	authRequired := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/change-password", authHandler.ChangePassword, authRequired)

	// --- Profile routes ---
	api.GET("/users/profile", userHandler.GetProfile, authRequired)
	api.PATCH("/users/profile", userHandler.UpdateProfile, authRequired)

	// --- Prospect routes: submission is public, management is staff-only ---
	api.POST("/prospects", prospectHandler.Create)
	api.GET("/prospects", prospectHandler.List, authRequired)
	api.PUT("/prospects/:id", prospectHandler.Update, authRequired)
	api.DELETE("/prospects/:id", prospectHandler.Delete, authRequired)

	// --- Distribution list routes ---
	recipients := api.Group("/email-recipients", authRequired)
	recipients.POST("", recipientHandler.Create)
	recipients.GET("", recipientHandler.List)
	recipients.GET("/:id", recipientHandler.Get)
	recipients.PUT("/:id", recipientHandler.Update)
	recipients.DELETE("/:id", recipientHandler.Delete)

	return e
}
