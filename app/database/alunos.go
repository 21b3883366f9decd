package database

import (
	"database/sql"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

// GetAlunos retrieves the roster, active students first.
func GetAlunos(db *sql.DB) ([]models.Aluno, error) {
	query := `SELECT id, nome, serie, ativo FROM alunos ORDER BY ativo DESC, nome ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alunos []models.Aluno
	for rows.Next() {
		var a models.Aluno
		if err := rows.Scan(&a.ID, &a.Nome, &a.Serie, &a.Ativo); err != nil {
			return nil, err
		}
		alunos = append(alunos, a)
	}
	return alunos, rows.Err()
}

func GetAlunoByID(db *sql.DB, id int64) (*models.Aluno, error) {
	a := &models.Aluno{}
	query := `SELECT id, nome, serie, ativo FROM alunos WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&a.ID, &a.Nome, &a.Serie, &a.Ativo)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAluno inserts a roster entry and returns it with the generated id.
func CreateAluno(db *sql.DB, nome, serie string) (*models.Aluno, error) {
	a := &models.Aluno{}
	query := `INSERT INTO alunos (nome, serie, ativo) VALUES ($1, $2, true)
			  RETURNING id, nome, serie, ativo`

	err := db.QueryRow(query, nome, serie).Scan(&a.ID, &a.Nome, &a.Serie, &a.Ativo)
	if err != nil {
		return nil, err
	}
	return a, nil
}
