package database

import (
	"database/sql"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

// GetEtapas retrieves the term catalog in display order.
func GetEtapas(db *sql.DB) ([]models.Etapa, error) {
	query := `SELECT id, nome, valor_total, ordem FROM etapas ORDER BY ordem ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var etapas []models.Etapa
	for rows.Next() {
		var e models.Etapa
		if err := rows.Scan(&e.ID, &e.Nome, &e.ValorTotal, &e.Ordem); err != nil {
			return nil, err
		}
		etapas = append(etapas, e)
	}
	return etapas, rows.Err()
}
