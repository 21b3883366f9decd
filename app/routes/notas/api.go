package notas

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fgagliano/Notas-Bernoulli/app/database"
	"github.com/fgagliano/Notas-Bernoulli/app/grading"
	"github.com/fgagliano/Notas-Bernoulli/app/models"
	"github.com/fgagliano/Notas-Bernoulli/app/validation"
)

func viewContextFromQuery(c *fiber.Ctx) (models.ViewContext, string) {
	vctx := models.ViewContext{
		Aluno: strings.TrimSpace(c.Query("aluno")),
		Ano:   c.QueryInt("ano", 0),
		Etapa: c.QueryInt("etapa", 0),
	}
	return vctx, viewContextError(vctx)
}

// notasView assembles the payload of the grading view: the resolved
// grade-level label plus the computed per-subject rows.
func notasView(db *sql.DB, vctx models.ViewContext, edits grading.Edits) (fiber.Map, error) {
	rows, err := database.GetNotas(db, vctx)
	if err != nil {
		return nil, err
	}
	serie, err := database.GetSerie(db, vctx.Aluno, vctx.Ano)
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"aluno":       vctx.Aluno,
		"ano":         vctx.Ano,
		"etapa":       vctx.Etapa,
		"serie":       serie,
		"valor_total": grading.BudgetForEtapa(vctx.Etapa),
		"disciplinas": grading.ComputeDisciplinas(rows, edits, vctx.Etapa),
	}, nil
}

// GetNotasViewAPI returns the computed grading view for one
// student/year/term, from persisted values only.
func GetNotasViewAPI(c *fiber.Ctx, db *sql.DB) error {
	vctx, msg := viewContextFromQuery(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	view, err := notasView(db, vctx, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": view})
}

// editPayload is one buffered, not-yet-saved field edit. Values come
// as the operator typed them; an empty string clears the grade. An
// omitted field leaves the stored value in effect.
type editPayload struct {
	ID       int64   `json:"id"`
	ValorMax *string `json:"valor_max"`
	Nota     *string `json:"nota"`
}

func buildEdits(payload []editPayload) grading.Edits {
	if len(payload) == 0 {
		return nil
	}
	edits := make(grading.Edits, len(payload))
	for _, p := range payload {
		var e grading.Edit
		if p.ValorMax != nil {
			max := grading.ParseDecimalOrZero(*p.ValorMax)
			e.ValorMax = &max
		}
		if p.Nota != nil {
			nota := models.Ungraded
			if v, ok := grading.ParseDecimal(*p.Nota); ok {
				nota = models.GradedScore(v)
			}
			e.Nota = &nota
		}
		edits[p.ID] = e
	}
	return edits
}

// PreviewNotasViewAPI recomputes the grading view with the operator's
// in-progress edits layered over the persisted rows, without writing
// anything.
func PreviewNotasViewAPI(c *fiber.Ctx, db *sql.DB) error {
	var payload struct {
		models.ViewContext
		Edits []editPayload `json:"edits"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}
	payload.Aluno = strings.TrimSpace(payload.Aluno)
	if msg := viewContextError(payload.ViewContext); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	view, err := notasView(db, payload.ViewContext, buildEdits(payload.Edits))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": view})
}

func viewContextError(vctx models.ViewContext) string {
	switch validation.FailedField(vctx) {
	case "":
		return ""
	case "Etapa":
		return "Etapa inválida (1,2,3)"
	default:
		return "aluno e ano são obrigatórios"
	}
}

// CreateNotaAPI adds a pending assessment to a subject, with the
// default label, zero maximum and no score.
func CreateNotaAPI(c *fiber.Ctx, db *sql.DB) error {
	var payload struct {
		models.ViewContext
		Disciplina string `json:"disciplina"`
		Avaliacao  string `json:"avaliacao"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}
	payload.Aluno = strings.TrimSpace(payload.Aluno)
	if msg := viewContextError(payload.ViewContext); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	avaliacao := strings.TrimSpace(payload.Avaliacao)
	if avaliacao == "" {
		avaliacao = models.NovaAvaliacaoLabel
	}

	nota, err := database.CreateNota(db, &models.Nota{
		Ano:        payload.Ano,
		Aluno:      payload.Aluno,
		Etapa:      payload.Etapa,
		Disciplina: strings.TrimSpace(payload.Disciplina),
		Avaliacao:  avaliacao,
		Tipo:       models.KindRegular,
		ValorMax:   0,
		Nota:       models.Ungraded,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": nota})
}

// UpdateNotaAPI applies a partial field edit to one assessment.
// Numeric fields arrive as the operator typed them and go through the
// locale-tolerant parser; the score must stay within [0, máx].
func UpdateNotaAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var payload struct {
		Avaliacao *string `json:"avaliacao"`
		ValorMax  *string `json:"valor_max"`
		Nota      *string `json:"nota"`
		Obs       *string `json:"obs"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	atual, err := database.GetNotaByID(db, id)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "avaliação não encontrada"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var upd database.NotaUpdate
	if payload.Avaliacao != nil {
		avaliacao := strings.TrimSpace(*payload.Avaliacao)
		upd.Avaliacao = &avaliacao
	}
	if payload.Obs != nil {
		upd.Obs = payload.Obs
	}

	valorMax := atual.ValorMax
	if payload.ValorMax != nil {
		// cleared field means zero maximum, not an error
		v := grading.ParseDecimalOrZero(*payload.ValorMax)
		if v < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "valor_max inválido"})
		}
		valorMax = v
		upd.ValorMax = &v
	}

	if payload.Nota != nil {
		nota := models.Ungraded
		if v, ok := grading.ParseDecimal(*payload.Nota); ok {
			nota = models.GradedScore(v)
		} else if strings.TrimSpace(*payload.Nota) != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nota inválida"})
		}
		if nota.Graded && (nota.Float64 < 0 || nota.Float64 > valorMax) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nota fora do intervalo"})
		}
		upd.Nota = &nota
	} else if atual.Nota.Graded && upd.ValorMax != nil && atual.Nota.Float64 > valorMax {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nota fora do intervalo"})
	}

	nota, err := database.UpdateNota(db, id, upd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": nota})
}

// DeleteNotaAPI removes one assessment row.
func DeleteNotaAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	err = database.DeleteNota(db, id)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "avaliação não encontrada"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id}})
}

// FecharDisciplinaAPI runs the term closer on one subject. An
// over-budget subject is a deliberate refusal, answered with the
// surplus in the message and no write performed.
func FecharDisciplinaAPI(c *fiber.Ctx, db *sql.DB) error {
	var payload struct {
		models.ViewContext
		Disciplina string `json:"disciplina"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}
	payload.Aluno = strings.TrimSpace(payload.Aluno)
	if msg := viewContextError(payload.ViewContext); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	nota, err := database.FecharDisciplina(db, payload.ViewContext, payload.Disciplina)
	var overBudget *grading.ErrOverBudget
	if errors.As(err, &overBudget) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": overBudget.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": nota})
}

// EtapaSugeridaAPI picks the term the operator should land on for a
// student/year.
func EtapaSugeridaAPI(c *fiber.Ctx, db *sql.DB) error {
	aluno := strings.TrimSpace(c.Query("aluno"))
	ano := c.QueryInt("ano", 0)
	if aluno == "" || ano == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "aluno e ano são obrigatórios"})
	}

	rows, err := database.GetNotasAluno(db, aluno, ano)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"etapa": grading.SuggestEtapa(rows)}})
}
