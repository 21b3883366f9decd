package lancamentos

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupLancamentosRoutes sets up the legacy grade-launch log API
func SetupLancamentosRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/notas-lancamentos")
	api.Get("/", func(c *fiber.Ctx) error { return GetLancamentosAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateLancamentoAPI(c, db) })
}
