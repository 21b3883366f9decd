package models

// Aluno is one entry of the student roster.
type Aluno struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome" validate:"required"`
	Serie string `json:"serie" validate:"required"`
	Ativo bool   `json:"ativo"`
}

// AlunoAno binds a student to a grade-level label for one academic
// year, e.g. Miguel + 2025 → 8EF. Unique per (aluno, ano).
type AlunoAno struct {
	Aluno string `json:"aluno" validate:"required"`
	Ano   int    `json:"ano" validate:"required"`
	Serie string `json:"serie" validate:"required"`
}
