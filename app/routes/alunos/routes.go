package alunos

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAlunosRoutes sets up the student roster API
func SetupAlunosRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/alunos")
	api.Get("/", func(c *fiber.Ctx) error { return GetAlunosAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateAlunoAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetAlunoByIDAPI(c, db) })
}
