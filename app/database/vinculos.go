package database

import (
	"database/sql"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

// GetVinculos lists the student/year bindings, newest year first.
func GetVinculos(db *sql.DB) ([]models.AlunoAno, error) {
	query := `SELECT aluno, ano, serie FROM aluno_ano ORDER BY ano DESC, aluno ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vinculos []models.AlunoAno
	for rows.Next() {
		var v models.AlunoAno
		if err := rows.Scan(&v.Aluno, &v.Ano, &v.Serie); err != nil {
			return nil, err
		}
		vinculos = append(vinculos, v)
	}
	return vinculos, rows.Err()
}

// UpsertVinculo creates or replaces the binding for (aluno, ano).
func UpsertVinculo(db *sql.DB, v models.AlunoAno) error {
	query := `
		INSERT INTO aluno_ano (aluno, ano, serie) VALUES ($1, $2, $3)
		ON CONFLICT (aluno, ano) DO UPDATE SET serie = EXCLUDED.serie
	`
	_, err := db.Exec(query, v.Aluno, v.Ano, v.Serie)
	return err
}

func DeleteVinculo(db *sql.DB, aluno string, ano int) error {
	_, err := db.Exec(`DELETE FROM aluno_ano WHERE aluno = $1 AND ano = $2`, aluno, ano)
	return err
}

// GetSerie resolves the grade-level label for a student in a year.
// Returns "" when no binding exists.
func GetSerie(db *sql.DB, aluno string, ano int) (string, error) {
	var serie string
	err := db.QueryRow(`SELECT serie FROM aluno_ano WHERE aluno = $1 AND ano = $2`, aluno, ano).Scan(&serie)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return serie, nil
}
