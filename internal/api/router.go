package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/workspherex/workforce-api/docs"
	"github.com/workspherex/workforce-api/internal/api/handler"
	"github.com/workspherex/workforce-api/internal/api/middleware"
	"github.com/workspherex/workforce-api/internal/core/domain"
	"github.com/workspherex/workforce-api/internal/core/service"
	"github.com/workspherex/workforce-api/internal/infrastructure/config"
	mongorepo "github.com/workspherex/workforce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/workspherex/workforce-api/internal/infrastructure/db/redis"
	"github.com/workspherex/workforce-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workforce"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// --- Dependencies ---
	employeeRepo := mongorepo.NewEmployeeRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)
	denylist := redisstore.NewTokenDenylist(rdb)

	authService := service.NewAuthService(employeeRepo, denylist, cfg.JWTSecret, cfg.TokenTTL, cfg.AdminEmails, log)
	employeeService := service.NewEmployeeService(employeeRepo)
	taskService := service.NewTaskService(taskRepo, employeeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	taskHandler := handler.NewTaskHandler(taskService)

	authRequired := middleware.Auth(cfg.JWTSecret, denylist)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)

	// --- Employee directory (admin console) ---
	e.GET("/api/employees", employeeHandler.List, authRequired, adminOnly)

	// --- Task routes ---
	// Every task route requires a valid, unrevoked token. Creation and
	// deletion belong to the admin console; listing and status updates are
	// employee-facing.
	e.POST("/api/tasks", taskHandler.Create, authRequired, adminOnly)
	e.GET("/api/tasks", taskHandler.List, authRequired)
	e.GET("/api/tasks/stats", taskHandler.Stats, authRequired)
	e.PATCH("/api/tasks/:id", taskHandler.UpdateStatus, authRequired)
	e.DELETE("/api/tasks/:id", taskHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
