package dashboard

import (
	"database/sql"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the dashboard statistics route. The path
// lives under /fees/api for compatibility with the existing dashboard page.
func SetupDashboardRoutes(app *fiber.App, db *sql.DB, statsCache *cache.StatsCache) {
	app.Get("/fees/api/dashboard-stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, db, statsCache)
	})
}
