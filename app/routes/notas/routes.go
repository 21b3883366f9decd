package notas

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupNotasRoutes sets up the grade book API: the computed per-term
// view, assessment CRUD, the term-closing action and the term
// suggestion.
func SetupNotasRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/notas")
	api.Get("/", func(c *fiber.Ctx) error { return GetNotasViewAPI(c, db) })
	api.Get("/etapa-sugerida", func(c *fiber.Ctx) error { return EtapaSugeridaAPI(c, db) })
	api.Post("/visao", func(c *fiber.Ctx) error { return PreviewNotasViewAPI(c, db) })
	api.Post("/fechar", func(c *fiber.Ctx) error { return FecharDisciplinaAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateNotaAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateNotaAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteNotaAPI(c, db) })
}
