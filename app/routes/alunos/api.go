package alunos

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fgagliano/Notas-Bernoulli/app/database"
)

// GetAlunosAPI returns the full roster, active students first.
func GetAlunosAPI(c *fiber.Ctx, db *sql.DB) error {
	alunos, err := database.GetAlunos(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": alunos})
}

// CreateAlunoAPI registers a student on the roster.
func CreateAlunoAPI(c *fiber.Ctx, db *sql.DB) error {
	var payload struct {
		Nome  string `json:"nome"`
		Serie string `json:"serie"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	payload.Nome = strings.TrimSpace(payload.Nome)
	payload.Serie = strings.TrimSpace(payload.Serie)
	if payload.Nome == "" || payload.Serie == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nome e serie são obrigatórios"})
	}

	aluno, err := database.CreateAluno(db, payload.Nome, payload.Serie)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": aluno})
}

// GetAlunoByIDAPI returns a single roster entry.
func GetAlunoByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	aluno, err := database.GetAlunoByID(db, id)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "aluno não encontrado"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": aluno})
}
