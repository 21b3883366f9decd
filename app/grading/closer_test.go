package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

func TestPlanCloseCreatesAjuste(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A1", 10, models.GradedScore(6)),
		nota(2, "Matemática", "A2", 10, models.Ungraded),
	}

	plan, err := PlanClose("Matemática", rows, 30)
	require.NoError(t, err)
	assert.False(t, plan.Update)
	assert.Equal(t, 10.0, plan.ValorMax)
}

func TestPlanCloseUpdatesExistingAjuste(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A1", 10, models.GradedScore(6)),
		ajuste(2, "Matemática", 5),
		nota(3, "Matemática", "A2", 12, models.Ungraded),
	}

	plan, err := PlanClose("Matemática", rows, 30)
	require.NoError(t, err)
	assert.True(t, plan.Update)
	assert.Equal(t, int64(2), plan.NotaID)
	// the old balancing value is ignored, only regular rows count
	assert.Equal(t, 8.0, plan.ValorMax)
}

func TestPlanCloseIsIdempotent(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A1", 10, models.GradedScore(6)),
		nota(2, "Matemática", "A2", 10, models.Ungraded),
	}

	first, err := PlanClose("Matemática", rows, 30)
	require.NoError(t, err)
	require.False(t, first.Update)

	// apply the plan and close again with no intervening edits
	rows = append(rows, ajuste(3, "Matemática", first.ValorMax))

	second, err := PlanClose("Matemática", rows, 30)
	require.NoError(t, err)
	assert.True(t, second.Update)
	assert.Equal(t, int64(3), second.NotaID)
	assert.Equal(t, first.ValorMax, second.ValorMax)
}

func TestPlanCloseExactBudgetZeroesAjuste(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A1", 30, models.GradedScore(20)),
		ajuste(2, "Matemática", 4),
	}

	plan, err := PlanClose("Matemática", rows, 30)
	require.NoError(t, err)
	assert.True(t, plan.Update)
	// the balancing row becomes a zero-value placeholder, never deleted
	assert.Equal(t, 0.0, plan.ValorMax)
}

func TestPlanCloseRefusesOverBudget(t *testing.T) {
	rows := []models.Nota{
		nota(1, "Matemática", "A1", 10, models.GradedScore(6)),
		nota(2, "Matemática", "A2", 10, models.Ungraded),
		nota(3, "Matemática", "A3", 25, models.Ungraded),
	}

	_, err := PlanClose("Matemática", rows, 30)
	require.Error(t, err)

	var over *ErrOverBudget
	require.ErrorAs(t, err, &over)
	assert.Equal(t, "Matemática", over.Disciplina)
	assert.InDelta(t, 15.0, over.Excesso, 1e-9)
	assert.Contains(t, over.Error(), "Matemática")
	assert.Contains(t, over.Error(), "15.0")
}
