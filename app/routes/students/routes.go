package students

import (
	"database/sql"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes sets up the student record routes.
func SetupStudentsRoutes(app *fiber.App, db *sql.DB, statsCache *cache.StatsCache) {
	api := app.Group("/students/api")

	api.Get("/students", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, db)
	})

	api.Post("/students", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db, statsCache)
	})

	api.Put("/students/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, db, statsCache)
	})

	api.Delete("/students/:id", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, db, statsCache)
	})
}
