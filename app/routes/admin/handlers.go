package admin

import (
	"crypto/subtle"
	"database/sql"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fgagliano/Notas-Bernoulli/app/config"
	"github.com/fgagliano/Notas-Bernoulli/app/database"
	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

// secretOK compares the submitted admin secret against the configured
// one. An unset configured secret rejects everything.
func secretOK(cfg *config.Config, given string) bool {
	if cfg.AdminSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cfg.AdminSecret), []byte(given)) == 1
}

func redirectErro(c *fiber.Ctx, msg string) error {
	return c.Redirect("/admin?erro=" + url.QueryEscape(msg))
}

// AdminPage renders the binding list plus the upsert/delete forms.
func AdminPage(c *fiber.Ctx, db *sql.DB) error {
	vinculos, err := database.GetVinculos(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":        "Erro - Notas Bernoulli",
			"ErrorMessage": err.Error(),
		})
	}

	return c.Render("admin/index", fiber.Map{
		"Title":    "Admin · Série por ano",
		"Vinculos": vinculos,
		"Erro":     c.Query("erro"),
		"OK":       c.Query("ok") != "",
	})
}

// UpsertVinculoForm creates or updates a student/year binding.
func UpsertVinculoForm(c *fiber.Ctx, db *sql.DB, cfg *config.Config) error {
	if !secretOK(cfg, c.FormValue("admin_secret")) {
		return redirectErro(c, "Código de admin inválido.")
	}

	aluno := strings.TrimSpace(c.FormValue("aluno"))
	serie := strings.TrimSpace(c.FormValue("serie"))
	ano, err := strconv.Atoi(strings.TrimSpace(c.FormValue("ano")))
	if aluno == "" || serie == "" || err != nil {
		return redirectErro(c, "Preencha Aluno, Ano e Série.")
	}

	if err := database.UpsertVinculo(db, models.AlunoAno{Aluno: aluno, Ano: ano, Serie: serie}); err != nil {
		return redirectErro(c, err.Error())
	}
	return c.Redirect("/admin?ok=1")
}

// DeleteVinculoForm removes a student/year binding.
func DeleteVinculoForm(c *fiber.Ctx, db *sql.DB, cfg *config.Config) error {
	if !secretOK(cfg, c.FormValue("admin_secret")) {
		return redirectErro(c, "Código de admin inválido.")
	}

	aluno := strings.TrimSpace(c.FormValue("aluno"))
	ano, err := strconv.Atoi(strings.TrimSpace(c.FormValue("ano")))
	if aluno == "" || err != nil {
		return redirectErro(c, "Aluno/Ano inválidos.")
	}

	if err := database.DeleteVinculo(db, aluno, ano); err != nil {
		return redirectErro(c, err.Error())
	}
	return c.Redirect("/admin?ok=1")
}

// GetVinculosAPI returns the bindings as JSON for the grading view's
// selectors.
func GetVinculosAPI(c *fiber.Ctx, db *sql.DB) error {
	vinculos, err := database.GetVinculos(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": vinculos})
}
