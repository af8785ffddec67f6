package routes

import (
	"thoth-hr/internal/adapters/http/handlers"
	"thoth-hr/internal/adapters/http/middleware"
	"thoth-hr/internal/adapters/persistence/userstore"
	"thoth-hr/internal/config"
	"thoth-hr/internal/core/services"
	"thoth-hr/internal/core/store"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, st *store.Store, users userstore.Repository, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(users, cfg)
	reportService := services.NewReportService(st)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	memberHandler := handlers.NewMemberHandler(st)
	loanHandler := handlers.NewLoanHandler(st)
	savingHandler := handlers.NewSavingHandler(st)
	payrollHandler := handlers.NewPayrollHandler(st)
	transactionHandler := handlers.NewTransactionHandler(st)
	contractHandler := handlers.NewContractHandler(st)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Protected resource routes
	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))

	setupMemberRoutes(protected.Group("/members"), memberHandler)
	setupLoanRoutes(protected.Group("/loans"), loanHandler)
	setupSavingRoutes(protected.Group("/savings"), savingHandler)
	setupPayrollRoutes(protected.Group("/payrolls"), payrollHandler)
	setupTransactionRoutes(protected.Group("/transactions"), transactionHandler)
	setupContractRoutes(protected.Group("/contracts"), contractHandler)
	setupReportRoutes(protected.Group("/reports"), reportHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupMemberRoutes configures member routes
func setupMemberRoutes(router fiber.Router, handler *handlers.MemberHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupLoanRoutes configures loan routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupSavingRoutes configures saving routes
func setupSavingRoutes(router fiber.Router, handler *handlers.SavingHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupPayrollRoutes configures payroll routes
func setupPayrollRoutes(router fiber.Router, handler *handlers.PayrollHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Put("/:id/pay", handler.Pay)
	router.Delete("/:id", handler.Delete)
}

// setupTransactionRoutes configures transaction routes
func setupTransactionRoutes(router fiber.Router, handler *handlers.TransactionHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupContractRoutes configures contract routes
func setupContractRoutes(router fiber.Router, handler *handlers.ContractHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupReportRoutes configures dashboard and report routes
func setupReportRoutes(router fiber.Router, handler *handlers.ReportHandler) {
	router.Get("/summary", handler.Summary)
	router.Get("/loan-status", handler.LoanStatusDistribution)
	router.Get("/payroll-status", handler.PayrollStatusDistribution)
	router.Get("/payroll-trend", handler.PayrollTrend)
	router.Get("/saving-trend", handler.SavingTrend)
	router.Get("/members", handler.MemberReport)
	router.Get("/members/export", handler.ExportMemberReport)
}
