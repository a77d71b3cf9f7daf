package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/armughan418/EPS-MY-SMS/app/database"
)

// StartStatsRefresher periodically recomputes the dashboard stats and warms
// the cache so the first dashboard load after an idle period stays fast.
// It is a no-op when no cache is configured.
func StartStatsRefresher(db *sql.DB, statsCache *cache.StatsCache) {
	if statsCache == nil {
		return
	}

	go func() {
		log.Println("Dashboard stats refresher started...")
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			stats, err := database.GetDashboardStats(ctx, db)
			if err != nil {
				log.Printf("Error refreshing dashboard stats: %v", err)
				cancel()
				continue
			}
			if err := statsCache.Set(ctx, stats); err != nil {
				log.Printf("Error caching dashboard stats: %v", err)
			}
			cancel()
		}
	}()
}
