package etapas

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/fgagliano/Notas-Bernoulli/app/database"
)

// SetupEtapasRoutes exposes the read-only term catalog.
func SetupEtapasRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/etapas", func(c *fiber.Ctx) error { return GetEtapasAPI(c, db) })
}

func GetEtapasAPI(c *fiber.Ctx, db *sql.DB) error {
	etapas, err := database.GetEtapas(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": etapas})
}
