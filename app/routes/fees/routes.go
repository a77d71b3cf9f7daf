package fees

import (
	"database/sql"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/armughan418/EPS-MY-SMS/app/database"
	"github.com/armughan418/EPS-MY-SMS/app/ledger"
	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the fee ledger routes.
func SetupFeesRoutes(app *fiber.App, db *sql.DB, statsCache *cache.StatsCache) {
	svc := ledger.NewService(database.NewFeeStore(db))

	api := app.Group("/fees/api")

	api.Get("/students", func(c *fiber.Ctx) error {
		return GetFeeStudentsAPI(c, db)
	})

	api.Get("/students/:id/history", func(c *fiber.Ctx) error {
		return GetFeeHistoryAPI(c, db)
	})

	api.Post("/students/markFeePaid", func(c *fiber.Ctx) error {
		return MarkFeePaidAPI(c, svc, statsCache)
	})
}
