package models

import "time"

// NotaLancamento is one entry of the flat grade-launch log kept by the
// original single-form page. It predates the per-term grade book and
// is kept for the history it holds.
type NotaLancamento struct {
	ID         int64     `json:"id"`
	CriadoEm   time.Time `json:"criado_em"`
	Aluno      string    `json:"aluno" validate:"required"`
	Serie      string    `json:"serie" validate:"required"`
	Etapa      int       `json:"etapa" validate:"required,min=1,max=3"`
	Disciplina string    `json:"disciplina" validate:"required"`
	Avaliacao  string    `json:"avaliacao" validate:"required"`
	ValorMax   float64   `json:"valor_max" validate:"gt=0"`
	ValorMedia float64   `json:"valor_media" validate:"gte=0"`
	Nota       Score     `json:"nota"`
}
