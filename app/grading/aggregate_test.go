package grading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

func nota(id int64, disciplina, avaliacao string, max float64, score models.Score) models.Nota {
	return models.Nota{
		ID:         id,
		CriadoEm:   time.Date(2025, 3, 1, 12, 0, 0, int(id), time.UTC),
		Ano:        2025,
		Aluno:      "Miguel",
		Etapa:      1,
		Disciplina: disciplina,
		Avaliacao:  avaliacao,
		Tipo:       models.KindRegular,
		ValorMax:   max,
		Nota:       score,
	}
}

func ajuste(id int64, disciplina string, max float64) models.Nota {
	n := nota(id, disciplina, models.AjusteLabel, max, models.Ungraded)
	n.Tipo = models.KindAjuste
	return n
}

func TestComputeDisciplinasMathScenario(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A1", 10, models.GradedScore(6)),
		nota(2, "Matemática", "A2", 10, models.Ungraded),
	}

	out := ComputeDisciplinas(rows, nil, 1)
	require.Len(t, out, 1)

	d := out[0]
	assert.Equal(t, "Matemática", d.Nome)
	assert.Equal(t, 20.0, d.SomaMax)
	assert.Equal(t, 30.0, d.ValorTotal)
	assert.Equal(t, 10.0, d.Diferenca)

	require.Len(t, d.Avaliacoes, 2)
	a1, a2 := d.Avaliacoes[0], d.Avaliacoes[1]

	assert.Equal(t, 6.0, a1.Media)
	assert.False(t, a1.AbaixoMedia, "6.0 is not below 6.0")
	require.NotNil(t, a1.MediaAcumulada)
	require.NotNil(t, a1.NotaAcumulada)
	assert.Equal(t, 6.0, *a1.MediaAcumulada)
	assert.Equal(t, 6.0, *a1.NotaAcumulada)
	assert.False(t, a1.AbaixoAcumulado)

	// pending rows never display cumulative progress
	assert.Nil(t, a2.MediaAcumulada)
	assert.Nil(t, a2.NotaAcumulada)
	assert.False(t, a2.AbaixoAcumulado)
}

func TestComputeDisciplinasCumulativeSkipsUngraded(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Ciências", "A1", 10, models.GradedScore(5)),
		nota(2, "Ciências", "A2", 8, models.Ungraded),
		nota(3, "Ciências", "A3", 10, models.GradedScore(7)),
	}

	out := ComputeDisciplinas(rows, nil, 1)
	require.Len(t, out, 1)
	require.Len(t, out[0].Avaliacoes, 3)

	a3 := out[0].Avaliacoes[2]
	require.NotNil(t, a3.MediaAcumulada)
	// A2 is ungraded: its threshold does not enter the running sums
	assert.Equal(t, 12.0, *a3.MediaAcumulada)
	assert.Equal(t, 12.0, *a3.NotaAcumulada)
	assert.False(t, a3.AbaixoAcumulado)
}

func TestComputeDisciplinasBelowFlags(t *testing.T) {
	rows := []models.Nota{
		nota(1, "História", "A1", 10, models.GradedScore(5.9)),
		nota(2, "História", "A2", 10, models.GradedScore(6.0)),
	}

	out := ComputeDisciplinas(rows, nil, 1)
	require.Len(t, out, 1)
	a1, a2 := out[0].Avaliacoes[0], out[0].Avaliacoes[1]

	assert.True(t, a1.AbaixoMedia)
	assert.False(t, a2.AbaixoMedia)

	// cumulative: 11.9 against 12.0
	require.NotNil(t, a2.NotaAcumulada)
	assert.Equal(t, 11.9, *a2.NotaAcumulada)
	assert.Equal(t, 12.0, *a2.MediaAcumulada)
	assert.True(t, a2.AbaixoAcumulado)
}

func TestComputeDisciplinasEditsOverride(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Geografia", "A1", 10, models.GradedScore(6)),
	}

	newMax := 20.0
	cleared := models.Ungraded
	edits := Edits{
		1: {ValorMax: &newMax, Nota: &cleared},
	}

	out := ComputeDisciplinas(rows, edits, 1)
	require.Len(t, out, 1)
	a1 := out[0].Avaliacoes[0]

	assert.Equal(t, 20.0, a1.ValorMax)
	assert.Equal(t, 12.0, a1.Media)
	assert.False(t, a1.Nota.Graded, "edited-to-blank score counts as not graded")
	assert.Nil(t, a1.MediaAcumulada)
	assert.Equal(t, 20.0, out[0].SomaMax)
	assert.Equal(t, 10.0, out[0].Diferenca)
}

func TestComputeDisciplinasEmptySubjectBucket(t *testing.T) {
	rows := []models.Nota{
		nota(1, "   ", "A1", 10, models.Ungraded),
	}

	out := ComputeDisciplinas(rows, nil, 1)
	require.Len(t, out, 1)
	assert.Equal(t, models.SemDisciplina, out[0].Nome)
}

func TestComputeDisciplinasAjusteCountsTowardSum(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A1", 10, models.GradedScore(6)),
		ajuste(2, "Matemática", 20),
	}

	out := ComputeDisciplinas(rows, nil, 1)
	require.Len(t, out, 1)
	assert.Equal(t, 30.0, out[0].SomaMax)
	assert.Equal(t, 0.0, out[0].Diferenca)

	// the balancing row sorts last
	assert.Equal(t, models.KindAjuste, out[0].Avaliacoes[1].Tipo)
}
