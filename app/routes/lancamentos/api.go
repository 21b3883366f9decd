package lancamentos

import (
	"database/sql"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fgagliano/Notas-Bernoulli/app/database"
	"github.com/fgagliano/Notas-Bernoulli/app/models"
	"github.com/fgagliano/Notas-Bernoulli/app/validation"
)

// GetLancamentosAPI returns the latest log entries, newest first.
func GetLancamentosAPI(c *fiber.Ctx, db *sql.DB) error {
	limit := c.QueryInt("limit", 20)
	if limit > 200 {
		limit = 200
	}
	if limit <= 0 {
		limit = 20
	}

	lancamentos, err := database.GetLancamentos(db, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": lancamentos})
}

// CreateLancamentoAPI appends one entry to the launch log. This is the
// original single-form path and keeps its full validation, including
// the score range check.
func CreateLancamentoAPI(c *fiber.Ctx, db *sql.DB) error {
	var payload struct {
		Aluno      string       `json:"aluno"`
		Serie      string       `json:"serie"`
		Etapa      int          `json:"etapa"`
		Disciplina string       `json:"disciplina"`
		Avaliacao  string       `json:"avaliacao"`
		ValorMax   float64      `json:"valor_max"`
		ValorMedia *float64     `json:"valor_media"`
		Nota       models.Score `json:"nota"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	valorMedia := 0.0
	if payload.ValorMedia != nil {
		valorMedia = *payload.ValorMedia
	} else {
		// two decimals, as the form pre-fills it
		valorMedia = math.Round(payload.ValorMax*0.6*100) / 100
	}

	l := &models.NotaLancamento{
		Aluno:      strings.TrimSpace(payload.Aluno),
		Serie:      strings.TrimSpace(payload.Serie),
		Etapa:      payload.Etapa,
		Disciplina: strings.TrimSpace(payload.Disciplina),
		Avaliacao:  strings.TrimSpace(payload.Avaliacao),
		ValorMax:   payload.ValorMax,
		ValorMedia: valorMedia,
		Nota:       payload.Nota,
	}

	switch validation.FailedField(l) {
	case "":
		// passes
	case "Aluno", "Serie", "Disciplina", "Avaliacao":
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Campos obrigatórios: aluno, serie, disciplina, avaliacao"})
	case "Etapa":
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Etapa inválida (1,2,3)"})
	case "ValorMax":
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "valor_max inválido"})
	case "ValorMedia":
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "valor_media inválido"})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	if l.Nota.Graded && (l.Nota.Float64 < 0 || l.Nota.Float64 > l.ValorMax) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nota fora do intervalo"})
	}

	saved, err := database.CreateLancamento(db, l)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": saved})
}
