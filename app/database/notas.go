package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fgagliano/Notas-Bernoulli/app/grading"
	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

const notaColumns = `id, criado_em, ano, aluno, etapa, disciplina, avaliacao, tipo, valor_max, nota, obs`

func scanNota(row interface{ Scan(...interface{}) error }) (*models.Nota, error) {
	n := &models.Nota{}
	err := row.Scan(
		&n.ID, &n.CriadoEm, &n.Ano, &n.Aluno, &n.Etapa,
		&n.Disciplina, &n.Avaliacao, &n.Tipo, &n.ValorMax, &n.Nota, &n.Obs,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// GetNotas retrieves every assessment row of one student/year/term in
// stable creation order.
func GetNotas(db *sql.DB, vctx models.ViewContext) ([]models.Nota, error) {
	query := `SELECT ` + notaColumns + ` FROM notas
			  WHERE aluno = $1 AND ano = $2 AND etapa = $3
			  ORDER BY criado_em ASC, id ASC`
	return queryNotas(db, query, vctx.Aluno, vctx.Ano, vctx.Etapa)
}

// GetNotasAluno retrieves a student's rows across all terms of a year,
// as the term suggestion needs the whole picture.
func GetNotasAluno(db *sql.DB, aluno string, ano int) ([]models.Nota, error) {
	query := `SELECT ` + notaColumns + ` FROM notas
			  WHERE aluno = $1 AND ano = $2
			  ORDER BY etapa ASC, criado_em ASC, id ASC`
	return queryNotas(db, query, aluno, ano)
}

func queryNotas(db *sql.DB, query string, args ...interface{}) ([]models.Nota, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notas []models.Nota
	for rows.Next() {
		n, err := scanNota(rows)
		if err != nil {
			return nil, err
		}
		notas = append(notas, *n)
	}
	return notas, rows.Err()
}

func GetNotaByID(db *sql.DB, id int64) (*models.Nota, error) {
	query := `SELECT ` + notaColumns + ` FROM notas WHERE id = $1`
	return scanNota(db.QueryRow(query, id))
}

// CreateNota inserts an assessment row and returns the stored record.
func CreateNota(db *sql.DB, n *models.Nota) (*models.Nota, error) {
	query := `
		INSERT INTO notas (ano, aluno, etapa, disciplina, avaliacao, tipo, valor_max, nota, obs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + notaColumns
	return scanNota(db.QueryRow(query,
		n.Ano, n.Aluno, n.Etapa, n.Disciplina, n.Avaliacao, n.Tipo, n.ValorMax, n.Nota, n.Obs,
	))
}

// NotaUpdate carries a partial field edit; nil pointers leave the
// stored value untouched.
type NotaUpdate struct {
	Avaliacao *string
	ValorMax  *float64
	Nota      *models.Score
	Obs       *string
}

// UpdateNota applies a partial edit and returns the authoritative
// updated record, so callers patch their view from the store's answer
// instead of assuming.
func UpdateNota(db *sql.DB, id int64, upd NotaUpdate) (*models.Nota, error) {
	var sets []string
	var args []interface{}

	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Avaliacao != nil {
		add("avaliacao", *upd.Avaliacao)
	}
	if upd.ValorMax != nil {
		add("valor_max", *upd.ValorMax)
	}
	if upd.Nota != nil {
		add("nota", *upd.Nota)
	}
	if upd.Obs != nil {
		add("obs", *upd.Obs)
	}
	if len(sets) == 0 {
		return GetNotaByID(db, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE notas SET %s WHERE id = $%d RETURNING `+notaColumns,
		strings.Join(sets, ", "), len(args))
	return scanNota(db.QueryRow(query, args...))
}

func DeleteNota(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM notas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FecharDisciplina reconciles one subject against its term budget in a
// single transaction: it locks the subject's rows, plans the balancing
// write and applies it, returning the balancing row as stored. An
// over-budget subject aborts with grading.ErrOverBudget and no write.
func FecharDisciplina(db *sql.DB, vctx models.ViewContext, disciplina string) (*models.Nota, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	where := `aluno = $1 AND ano = $2 AND etapa = $3 AND trim(disciplina) = $4`
	key := strings.TrimSpace(disciplina)
	if key == models.SemDisciplina {
		key = ""
	}

	query := `SELECT ` + notaColumns + ` FROM notas WHERE ` + where + `
			  ORDER BY criado_em ASC, id ASC
			  FOR UPDATE`
	rows, err := tx.Query(query, vctx.Aluno, vctx.Ano, vctx.Etapa, key)
	if err != nil {
		return nil, err
	}
	var notas []models.Nota
	for rows.Next() {
		n, err := scanNota(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		notas = append(notas, *n)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	plan, err := grading.PlanClose(disciplina, notas, grading.BudgetForEtapa(vctx.Etapa))
	if err != nil {
		return nil, err
	}

	var written *models.Nota
	if plan.Update {
		written, err = scanNota(tx.QueryRow(
			`UPDATE notas SET valor_max = $1 WHERE id = $2 RETURNING `+notaColumns,
			plan.ValorMax, plan.NotaID,
		))
	} else {
		written, err = scanNota(tx.QueryRow(`
			INSERT INTO notas (ano, aluno, etapa, disciplina, avaliacao, tipo, valor_max, nota, obs)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULL, '')
			RETURNING `+notaColumns,
			vctx.Ano, vctx.Aluno, vctx.Etapa, key, models.AjusteLabel, models.KindAjuste, plan.ValorMax,
		))
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return written, nil
}
