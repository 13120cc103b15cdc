package routes

import (
	"bms-api/internal/adapters/cache"
	"bms-api/internal/adapters/http/handlers"
	"bms-api/internal/adapters/http/middleware"
	"bms-api/internal/adapters/persistence/repositories"
	"bms-api/internal/config"
	"bms-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, rdb *redis.Client, statsService *services.StatsService, cfg *config.Config) {
	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo)
	accountService := services.NewAccountService(accountRepo)
	transactionService := services.NewTransactionService(transactionRepo, cfg.App.MaxTransactionAmount, cfg.App.ItemsPerPage)
	loanService := services.NewLoanService(loanRepo)

	var quoteCache services.QuoteCache
	if rdb != nil {
		quoteCache = cache.NewRedisQuoteCache(rdb)
	}
	emiService := services.NewEMIService(quoteCache)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	customerHandler := handlers.NewCustomerHandler(customerService)
	accountHandler := handlers.NewAccountHandler(accountService, cfg.App.ItemsPerPage)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	loanHandler := handlers.NewLoanHandler(loanService, emiService, cfg.App.ItemsPerPage)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	customerRoutes := apiV1.Group("/customers")
	setupCustomerRoutes(customerRoutes, customerHandler)

	accountRoutes := apiV1.Group("/accounts")
	setupAccountRoutes(accountRoutes, accountHandler)

	transactionRoutes := apiV1.Group("/transactions")
	setupTransactionRoutes(transactionRoutes, transactionHandler)

	loanRoutes := apiV1.Group("/loans")
	setupLoanRoutes(loanRoutes, loanHandler)

	dashboardRoutes := apiV1.Group("/dashboard")
	setupDashboardRoutes(dashboardRoutes, dashboardHandler)
}

// setupCustomerRoutes configures customer routes
func setupCustomerRoutes(router fiber.Router, handler *handlers.CustomerHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/active", handler.ListActive)
}

// setupAccountRoutes configures account routes
func setupAccountRoutes(router fiber.Router, handler *handlers.AccountHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Open)

	// Account types change rarely, let clients cache them
	router.Get("/types", middleware.MasterDataCache(), handler.Types)
	router.Get("/active", handler.ListActive)

	// Balances must always come from the live core
	router.Get("/:id/balance", middleware.NoCacheHeaders(), handler.Balance)
}

// setupTransactionRoutes configures money movement routes
func setupTransactionRoutes(router fiber.Router, handler *handlers.TransactionHandler) {
	movement := middleware.MovementRateLimiter()

	router.Post("/deposit", movement, handler.Deposit)
	router.Post("/withdraw", movement, handler.Withdraw)
	router.Post("/transfer", movement, handler.Transfer)
	router.Get("/recent", handler.Recent)
}

// setupLoanRoutes configures loan routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Get("/", handler.List)
	router.Post("/apply", handler.Apply)
	router.Get("/calculate-emi", handler.CalculateEMI)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	router.Get("/stats", middleware.NoCacheHeaders(), handler.Stats)
}
