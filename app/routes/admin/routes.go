package admin

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/fgagliano/Notas-Bernoulli/app/config"
)

// SetupAdminRoutes sets up the binding-management page and its form
// actions. Every mutation carries the shared admin secret; there is no
// session of any kind.
func SetupAdminRoutes(app *fiber.App, db *sql.DB, cfg *config.Config) {
	app.Get("/admin", func(c *fiber.Ctx) error { return AdminPage(c, db) })
	app.Post("/admin/vinculos", func(c *fiber.Ctx) error { return UpsertVinculoForm(c, db, cfg) })
	app.Post("/admin/vinculos/excluir", func(c *fiber.Ctx) error { return DeleteVinculoForm(c, db, cfg) })

	app.Get("/api/aluno-ano", func(c *fiber.Ctx) error { return GetVinculosAPI(c, db) })
}
