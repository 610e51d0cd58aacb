package app

import (
	"finboard-backend/internal/assets"
	"finboard-backend/internal/config"
	"finboard-backend/internal/dashboard"
	"finboard-backend/internal/documents"
	"finboard-backend/internal/health"
	"finboard-backend/internal/middleware"
	"finboard-backend/internal/portfolio"
	"finboard-backend/internal/transactions"
	"finboard-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. The store handle and redis client are injected; rdb may be
// nil (traffic stats are skipped), db may be nil only for health-only tests.
func CreateApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigin: cfg.ClientURL}))
	if rdb != nil {
		app.Use(middleware.TrafficMarker(rdb))
	}
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	// Health is registered unconditionally; the liveness check must answer
	// even when the store is down.
	var pinger health.DBPinger
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			pinger = sqlDB
		}
	}
	healthHandlers := &health.Handlers{Rdb: rdb, DB: pinger}
	app.Get("/api/health", healthHandlers.Check)
	app.Get("/api/health/stats", healthHandlers.GetStats)

	if db != nil {
		registerRoutes(app, db)
	}

	// Unmatched routes get the flat JSON 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	})

	return app
}

func registerRoutes(app *fiber.App, db *gorm.DB) {
	dashboardService := &dashboard.Service{DB: db}
	dashboardHandlers := &dashboard.Handlers{Service: dashboardService}
	dashboardGroup := app.Group("/api/dashboard")
	dashboardGroup.Get("/metrics", dashboardHandlers.GetMetrics)
	dashboardGroup.Get("/visitors", dashboardHandlers.GetVisitors)
	dashboardGroup.Get("/portfolio-summary", dashboardHandlers.GetPortfolioSummary)
	dashboardGroup.Get("/user-activity", dashboardHandlers.GetUserActivity)

	userHandlers := &users.Handlers{Service: &users.Service{DB: db}}
	userGroup := app.Group("/api/users")
	userGroup.Get("/", userHandlers.List)
	userGroup.Get("/:id", userHandlers.GetByID)
	userGroup.Post("/", userHandlers.Create)
	userGroup.Put("/:id", userHandlers.Update)
	userGroup.Delete("/:id", userHandlers.Delete)

	assetHandlers := &assets.Handlers{Service: &assets.Service{DB: db}}
	assetGroup := app.Group("/api/assets")
	assetGroup.Get("/", assetHandlers.List)
	assetGroup.Get("/symbol/:symbol", assetHandlers.GetBySymbol)
	assetGroup.Get("/:id", assetHandlers.GetByID)
	assetGroup.Post("/", assetHandlers.Create)
	assetGroup.Put("/:id", assetHandlers.Update)
	assetGroup.Delete("/:id", assetHandlers.Delete)

	txHandlers := &transactions.Handlers{Service: &transactions.Service{DB: db}}
	txGroup := app.Group("/api/transactions")
	txGroup.Get("/", txHandlers.List)
	txGroup.Get("/user/:userId", txHandlers.ListByUser)
	txGroup.Get("/:id", txHandlers.GetByID)
	txGroup.Post("/", txHandlers.Create)
	txGroup.Put("/:id", txHandlers.Update)
	txGroup.Delete("/:id", txHandlers.Delete)

	portfolioHandlers := &portfolio.Handlers{Service: &portfolio.Service{DB: db}}
	portfolioGroup := app.Group("/api/portfolio")
	portfolioGroup.Get("/", portfolioHandlers.List)
	portfolioGroup.Get("/user/:userId", portfolioHandlers.ListByUser)
	portfolioGroup.Get("/:id", portfolioHandlers.GetByID)
	portfolioGroup.Post("/", portfolioHandlers.Create)
	portfolioGroup.Put("/:id", portfolioHandlers.Update)
	portfolioGroup.Delete("/:id", portfolioHandlers.Delete)

	docHandlers := &documents.Handlers{Service: &documents.Service{Metrics: dashboardService}}
	docGroup := app.Group("/api/documents")
	docGroup.Get("/", docHandlers.List)
	docGroup.Get("/:id", docHandlers.GetByID)
}
