package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/timeformoney/bookkeeping/internal/api/handler"
	"github.com/timeformoney/bookkeeping/internal/core/service"
	"github.com/timeformoney/bookkeeping/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timeformoney"))

	// --- Services on top of the transactional store ---
	store := postgres.NewStore(db)
	clients := service.NewClientService(store, log)
	contacts := service.NewContactService(store, log)
	sessions := service.NewSessionService(store, log)
	payments := service.NewPaymentService(store, log)
	allocations := service.NewAllocationService(store, log)
	reports := service.NewReportsService(store, log)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is postgres up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("/api")

	// --- Clients ---
	clientHandler := handler.NewClientHandler(clients)
	apiGroup.GET("/clients", clientHandler.List)
	apiGroup.GET("/clients/:id", clientHandler.Get)
	apiGroup.POST("/clients", clientHandler.Create)
	apiGroup.PUT("/clients/:id", clientHandler.Update)
	apiGroup.DELETE("/clients/:id", clientHandler.Delete)

	// --- Contacts ---
	contactHandler := handler.NewContactHandler(contacts)
	apiGroup.GET("/contacts", contactHandler.List)
	apiGroup.GET("/contacts/:id", contactHandler.Get)
	apiGroup.POST("/contacts", contactHandler.Create)
	apiGroup.PUT("/contacts/:id", contactHandler.Update)
	apiGroup.DELETE("/contacts/:id", contactHandler.Delete)

	// --- Sessions ---
	sessionHandler := handler.NewSessionHandler(sessions)
	apiGroup.GET("/sessions", sessionHandler.List)
	apiGroup.GET("/sessions/:id", sessionHandler.Get)
	apiGroup.POST("/sessions", sessionHandler.Create)
	apiGroup.PUT("/sessions/:id", sessionHandler.Update)
	apiGroup.DELETE("/sessions/:id", sessionHandler.Delete)

	// --- Payments ---
	paymentHandler := handler.NewPaymentHandler(payments)
	apiGroup.GET("/payments", paymentHandler.List)
	apiGroup.GET("/payments/:id", paymentHandler.Get)
	apiGroup.POST("/payments", paymentHandler.Create)
	apiGroup.PUT("/payments/:id", paymentHandler.Update)
	apiGroup.DELETE("/payments/:id", paymentHandler.Delete)

	// --- Payment allocation engine ---
	allocationHandler := handler.NewAllocationHandler(allocations, reports)
	apiGroup.POST("/session-payments/assign", allocationHandler.Assign)
	apiGroup.GET("/session-payments/:id", allocationHandler.Get)
	apiGroup.PUT("/session-payments/:id", allocationHandler.Edit)
	apiGroup.DELETE("/session-payments/:id", allocationHandler.Delete)
	apiGroup.GET("/session-payments/session/:sessionId/balance", allocationHandler.SessionBalance)

	// --- Reports ---
	reportsHandler := handler.NewReportsHandler(reports)
	apiGroup.GET("/reports/client/:clientId/balance", reportsHandler.ClientBalance)
	apiGroup.GET("/reports/income-by-sessions", reportsHandler.IncomeBySessions)
	apiGroup.GET("/reports/income-by-payments", reportsHandler.IncomeByPayments)

	return e
}
