package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

func notaEtapa(id int64, etapa int, score models.Score) models.Nota {
	n := nota(id, "Matemática", "A1", 10, score)
	n.Etapa = etapa
	return n
}

func TestSuggestEtapa(t *testing.T) {
	t.Run("no rows defaults to term 1", func(t *testing.T) {
		assert.Equal(t, 1, SuggestEtapa(nil))
	})

	t.Run("term 1 incomplete wins", func(t *testing.T) {
		rows := []models.Nota{
			notaEtapa(1, 1, models.Ungraded),
			notaEtapa(2, 2, models.Ungraded),
		}
		assert.Equal(t, 1, SuggestEtapa(rows))
	})

	t.Run("term 1 graded, term 2 pending, term 3 empty", func(t *testing.T) {
		rows := []models.Nota{
			notaEtapa(1, 1, models.GradedScore(7)),
			notaEtapa(2, 1, models.GradedScore(8)),
			notaEtapa(3, 2, models.GradedScore(5)),
			notaEtapa(4, 2, models.Ungraded),
		}
		assert.Equal(t, 2, SuggestEtapa(rows))
	})

	t.Run("everything graded falls back to term 3", func(t *testing.T) {
		rows := []models.Nota{
			notaEtapa(1, 1, models.GradedScore(7)),
			notaEtapa(2, 2, models.GradedScore(8)),
		}
		assert.Equal(t, 3, SuggestEtapa(rows))
	})

	t.Run("ungraded balancing rows never count", func(t *testing.T) {
		adj := ajuste(1, "Matemática", 10)
		adj.Etapa = 1
		rows := []models.Nota{
			adj,
			notaEtapa(2, 1, models.GradedScore(6)),
		}
		assert.Equal(t, 3, SuggestEtapa(rows))
	})

	t.Run("term 3 is never re-checked", func(t *testing.T) {
		rows := []models.Nota{
			notaEtapa(1, 3, models.GradedScore(9)),
		}
		assert.Equal(t, 3, SuggestEtapa(rows))
	})
}
