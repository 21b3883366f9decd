package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/fgagliano/Notas-Bernoulli/app/config"
	"github.com/fgagliano/Notas-Bernoulli/app/database"
	"github.com/fgagliano/Notas-Bernoulli/app/routes/admin"
	"github.com/fgagliano/Notas-Bernoulli/app/routes/alunos"
	"github.com/fgagliano/Notas-Bernoulli/app/routes/etapas"
	"github.com/fgagliano/Notas-Bernoulli/app/routes/lancamentos"
	"github.com/fgagliano/Notas-Bernoulli/app/routes/notas"
)

// customErrorHandler answers /api requests as JSON and everything else
// with the error template.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("404", fiber.Map{
			"Title": "Página não encontrada - Notas Bernoulli",
		})
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Erro - Notas Bernoulli",
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// The grade book lives in Brazilian school time.
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		log.Printf("Warning: failed to load America/Sao_Paulo location, falling back to UTC-3: %v", err)
		time.Local = time.FixedZone("BRT", -3*60*60)
	} else {
		time.Local = loc
	}

	cfg := config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./app/templates", ".html")
	engine.Reload(false)

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin")
	})

	alunos.SetupAlunosRoutes(app, db)
	etapas.SetupEtapasRoutes(app, db)
	lancamentos.SetupLancamentosRoutes(app, db)
	notas.SetupNotasRoutes(app, db)
	admin.SetupAdminRoutes(app, db, cfg)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Página não encontrada")
	})

	log.Println("Server starting on :" + cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}
