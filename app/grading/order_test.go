package grading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

func labels(rows []models.Nota) []string {
	out := make([]string, len(rows))
	for i, n := range rows {
		out[i] = n.Avaliacao
	}
	return out
}

func TestSortRowsNumericLabels(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A10", 10, models.Ungraded),
		nota(2, "Matemática", "A2", 10, models.Ungraded),
		nota(3, "Matemática", "A1", 10, models.Ungraded),
	}

	SortRows(rows)
	require.Equal(t, []string{"A1", "A2", "A10"}, labels(rows))
}

func TestSortRowsAjusteAlwaysLast(t *testing.T) {
	rows := []models.Nota{
		ajuste(1, "Matemática", 5),
		nota(2, "Matemática", "Prova B", 10, models.Ungraded),
		nota(3, "Matemática", "Prova A", 10, models.Ungraded),
	}

	SortRows(rows)
	require.Equal(t, []string{"Prova A", "Prova B", "Ajuste"}, labels(rows))
}

func TestSortRowsTieBreakByCreation(t *testing.T) {
	a := nota(2, "Matemática", "Prova", 10, models.Ungraded)
	b := nota(1, "Matemática", "Prova", 10, models.Ungraded)
	a.CriadoEm = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	b.CriadoEm = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []models.Nota{a, b}
	SortRows(rows)
	require.Equal(t, int64(1), rows[0].ID)
	require.Equal(t, int64(2), rows[1].ID)
}

func TestSortDisciplinas(t *testing.T) {
	names := []string{"Química", "Biologia", "Física"}
	SortDisciplinas(names)
	require.Equal(t, []string{"Biologia", "Física", "Química"}, names)
}
