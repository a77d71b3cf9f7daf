package main

import (
	"fmt"
	"log"
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/armughan418/EPS-MY-SMS/app/config"
	"github.com/armughan418/EPS-MY-SMS/app/database"
	"github.com/armughan418/EPS-MY-SMS/app/metrics"
	"github.com/armughan418/EPS-MY-SMS/app/routes/dashboard"
	"github.com/armughan418/EPS-MY-SMS/app/routes/fees"
	"github.com/armughan418/EPS-MY-SMS/app/routes/students"
	"github.com/armughan418/EPS-MY-SMS/app/services"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// errorHandler maps errors to the JSON envelope the API pages consume.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Pakistan Standard Time
	loc, err := time.LoadLocation("Asia/Karachi")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Karachi location, falling back to UTC+5: %v", err)
		time.Local = time.FixedZone("PKT", 5*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Register Prometheus metrics
	metrics.Init()

	// Optional dashboard stats cache
	var statsCache *cache.StatsCache
	if client := config.GetRedis(); client != nil {
		statsCache = cache.NewStatsCache(client, 5*time.Minute)
		services.StartStatsRefresher(config.GetDB(), statsCache)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the School Management API!")
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Setup students routes
	students.SetupStudentsRoutes(app, config.GetDB(), statsCache)

	// Setup fees routes
	fees.SetupFeesRoutes(app, config.GetDB(), statsCache)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app, config.GetDB(), statsCache)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := fmt.Sprintf(":%d", config.GetPort())
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
