package dashboard

import (
	"database/sql"
	"log"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/armughan418/EPS-MY-SMS/app/database"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatsAPI returns the aggregate counts for the admin
// dashboard, served from the cache when one is configured.
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB, statsCache *cache.StatsCache) error {
	if statsCache != nil {
		if stats, err := statsCache.Get(c.Context()); err == nil {
			return c.JSON(fiber.Map{"stats": stats})
		} else if err != cache.ErrCacheMiss {
			log.Printf("Dashboard stats cache read failed: %v", err)
		}
	}

	stats, err := database.GetDashboardStats(c.Context(), db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	if statsCache != nil {
		if err := statsCache.Set(c.Context(), stats); err != nil {
			log.Printf("Dashboard stats cache write failed: %v", err)
		}
	}

	return c.JSON(fiber.Map{"stats": stats})
}
