package models

// Etapa is one of the three grading periods of the academic year. The
// catalog is seeded by the migrations and read-only from then on.
type Etapa struct {
	ID         int     `json:"id"`
	Nome       string  `json:"nome"`
	ValorTotal float64 `json:"valor_total"`
	Ordem      int     `json:"ordem"`
}
