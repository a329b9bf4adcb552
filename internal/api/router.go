package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/smarthr/hr-gateway/docs"
	"github.com/smarthr/hr-gateway/internal/api/handler"
	"github.com/smarthr/hr-gateway/internal/api/middleware"
	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/service"
	"github.com/smarthr/hr-gateway/internal/infrastructure/backend"
	"github.com/smarthr/hr-gateway/internal/infrastructure/config"
	redisstore "github.com/smarthr/hr-gateway/internal/infrastructure/store/redis"
	"github.com/smarthr/hr-gateway/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hrgateway"))

	// --- Dependencies ---
	store := redisstore.NewStateStore(rdb, cfg.Session.TTL)
	hrBackend := backend.NewHRClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	assistantBackend := backend.NewAssistantClient(cfg.Assistant.BaseURL, cfg.Assistant.Timeout, log)

	sessionService := service.NewSessionService(hrBackend, store, log)
	employeeService := service.NewEmployeeService(hrBackend, log)
	hrService := service.NewHRService(hrBackend, log)
	assistantService := service.NewAssistantService(assistantBackend, store, log)

	sessionHandler := handler.NewSessionHandler(sessionService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	hrHandler := handler.NewHRHandler(hrService, store)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	preferencesHandler := handler.NewPreferencesHandler(store)

	sessionMiddleware := middleware.Session(store)

	// --- Public routes ---
	e.POST("/session/login", sessionHandler.Login)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, cfg.Backend.BaseURL)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Session-scoped routes ---
	authed := e.Group("", sessionMiddleware)
	authed.DELETE("/session/logout", sessionHandler.Logout)

	employee := authed.Group("/employee")
	employee.GET("/profile", employeeHandler.Profile)
	employee.POST("/leave-requests", employeeHandler.RequestLeave)

	rrhh := authed.Group("/rrhh", middleware.RequireRole(domain.RoleHR))
	rrhh.GET("/dashboard", hrHandler.Dashboard)
	rrhh.GET("/employees", hrHandler.SearchEmployee)
	rrhh.POST("/employees", hrHandler.CreateEmployee)
	rrhh.POST("/employees/complete", hrHandler.CreateEmployeeComplete)
	rrhh.GET("/projects", hrHandler.SearchProjects)
	rrhh.GET("/leave-requests/pending", hrHandler.PendingLeaves)
	rrhh.PATCH("/leave-requests/:id/status", hrHandler.ResolveLeave)
	rrhh.GET("/departments", hrHandler.Departments)
	rrhh.GET("/skills", hrHandler.Skills)

	assistant := authed.Group("/assistant")
	assistant.POST("/chat", assistantHandler.Chat)
	assistant.GET("/transcript", assistantHandler.Transcript)

	preferences := authed.Group("/preferences")
	preferences.GET("/theme", preferencesHandler.Theme)
	preferences.PUT("/theme", preferencesHandler.SaveTheme)

	return e
}
