package models

import (
	"strings"
	"time"
)

// Kind tells a regular assessment apart from the synthetic balancing
// row the term closer maintains. It is an explicit column so that
// renaming the visible label can never break the closing logic.
type Kind string

const (
	KindRegular Kind = "regular"
	KindAjuste  Kind = "ajuste"
)

// AjusteLabel is the display label given to balancing rows.
const AjusteLabel = "Ajuste"

// NovaAvaliacaoLabel is the default label of a freshly added assessment.
const NovaAvaliacaoLabel = "Nova avaliação"

// Nota is one gradable item of a subject within a term: the core
// record of the grade book.
type Nota struct {
	ID         int64     `json:"id"`
	CriadoEm   time.Time `json:"criado_em"`
	Ano        int       `json:"ano" validate:"required"`
	Aluno      string    `json:"aluno" validate:"required"`
	Etapa      int       `json:"etapa" validate:"required,min=1,max=3"`
	Disciplina string    `json:"disciplina"`
	Avaliacao  string    `json:"avaliacao"`
	Tipo       Kind      `json:"tipo"`
	ValorMax   float64   `json:"valor_max" validate:"gte=0"`
	Nota       Score     `json:"nota"`
	Obs        string    `json:"obs"`
}

// IsAjuste reports whether this row is the synthetic balancing entry.
func (n *Nota) IsAjuste() bool {
	return n.Tipo == KindAjuste
}

// DisciplinaKey returns the subject bucket this row belongs to: the
// trimmed subject name, or the sentinel bucket when it is empty.
func (n *Nota) DisciplinaKey() string {
	d := strings.TrimSpace(n.Disciplina)
	if d == "" {
		return SemDisciplina
	}
	return d
}

// SemDisciplina is the bucket for rows saved without a subject name.
const SemDisciplina = "(Sem disciplina)"

// ViewContext is the student/year/term the operator is looking at. It
// is threaded explicitly through every query and mutation instead of
// living in ambient state.
type ViewContext struct {
	Aluno string `json:"aluno" validate:"required"`
	Ano   int    `json:"ano" validate:"required"`
	Etapa int    `json:"etapa" validate:"required,min=1,max=3"`
}
