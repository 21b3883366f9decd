package grading

import (
	"fmt"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

// ErrOverBudget is the term closer's refusal: the subject's regular
// assessments already sum above the term budget, so there is nothing a
// balancing row could absorb. No write happens in that case.
type ErrOverBudget struct {
	Disciplina string
	Excesso    float64
}

func (e *ErrOverBudget) Error() string {
	return fmt.Sprintf("a disciplina %q já ultrapassa o total da etapa em %s pontos", e.Disciplina, Format1(e.Excesso))
}

// ClosePlan is the single write that reconciles a subject against its
// term budget: either update the existing balancing row's maximum or
// create a new balancing row worth the shortfall.
type ClosePlan struct {
	Update   bool
	NotaID   int64
	ValorMax float64
}

// PlanClose reconciles one subject's assessments against the term
// budget. rows must all belong to the same subject/term/student/year.
// Closing twice in a row converges: the second call finds diff = 0 and
// rewrites the balancing row's maximum to 0, never duplicating it.
func PlanClose(disciplina string, rows []models.Nota, budget float64) (ClosePlan, error) {
	var ajuste *models.Nota
	var soma float64
	for i := range rows {
		if rows[i].IsAjuste() {
			if ajuste == nil {
				ajuste = &rows[i]
			}
			continue
		}
		soma += rows[i].ValorMax
	}

	diff := budget - soma
	if diff < -Epsilon {
		return ClosePlan{}, &ErrOverBudget{Disciplina: disciplina, Excesso: -diff}
	}
	if diff < 0 {
		diff = 0
	}

	if ajuste != nil {
		return ClosePlan{Update: true, NotaID: ajuste.ID, ValorMax: diff}, nil
	}
	return ClosePlan{ValorMax: diff}, nil
}
