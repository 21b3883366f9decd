package database

import (
	"database/sql"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

// GetLancamentos retrieves the latest entries of the grade-launch log.
func GetLancamentos(db *sql.DB, limit int) ([]models.NotaLancamento, error) {
	query := `SELECT id, criado_em, aluno, serie, etapa, disciplina, avaliacao, valor_max, valor_media, nota
			  FROM notas_lancamentos ORDER BY id DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lancamentos []models.NotaLancamento
	for rows.Next() {
		var l models.NotaLancamento
		err := rows.Scan(
			&l.ID, &l.CriadoEm, &l.Aluno, &l.Serie, &l.Etapa,
			&l.Disciplina, &l.Avaliacao, &l.ValorMax, &l.ValorMedia, &l.Nota,
		)
		if err != nil {
			return nil, err
		}
		lancamentos = append(lancamentos, l)
	}
	return lancamentos, rows.Err()
}

// CreateLancamento appends to the grade-launch log and returns the
// stored entry.
func CreateLancamento(db *sql.DB, l *models.NotaLancamento) (*models.NotaLancamento, error) {
	out := &models.NotaLancamento{}
	query := `
		INSERT INTO notas_lancamentos (aluno, serie, etapa, disciplina, avaliacao, valor_max, valor_media, nota)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, criado_em, aluno, serie, etapa, disciplina, avaliacao, valor_max, valor_media, nota`

	err := db.QueryRow(query,
		l.Aluno, l.Serie, l.Etapa, l.Disciplina, l.Avaliacao, l.ValorMax, l.ValorMedia, l.Nota,
	).Scan(
		&out.ID, &out.CriadoEm, &out.Aluno, &out.Serie, &out.Etapa,
		&out.Disciplina, &out.Avaliacao, &out.ValorMax, &out.ValorMedia, &out.Nota,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
