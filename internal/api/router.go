package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/task-api/internal/api/handler"
	"github.com/taskhive/task-api/internal/api/middleware"
	"github.com/taskhive/task-api/internal/core/service"
	infraauth "github.com/taskhive/task-api/internal/infrastructure/auth"
	mongodb "github.com/taskhive/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhive/task-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/taskhive/task-api/internal/infrastructure/http/handlers"
	"github.com/taskhive/task-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the login throttle is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	signer, err := infraauth.NewJWTSigner(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	hasher := infraauth.NewBcryptHasher(cfg.BcryptCost)

	var limiter service.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	}

	authRepo := mongodb.NewAuthRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)

	authService := service.NewAuthService(authRepo, hasher, signer, limiter, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authGate := middleware.Auth(signer, authRepo)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Task routes (owner-scoped, behind the auth gate) ---
	tasks := e.Group("/api/tasks", authGate)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/search", taskHandler.Search)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.PATCH("/:id/complete", taskHandler.Complete)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
