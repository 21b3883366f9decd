package grading

import "github.com/fgagliano/Notas-Bernoulli/app/models"

// SuggestEtapa picks the term the operator should land on given all of
// a student's rows for the year: the earliest of terms 1 and 2 that
// still has an ungraded regular assessment, term 3 otherwise. A
// student with no rows at all starts on term 1.
func SuggestEtapa(rows []models.Nota) int {
	if len(rows) == 0 {
		return 1
	}
	for _, etapa := range []int{1, 2} {
		if etapaIncompleta(rows, etapa) {
			return etapa
		}
	}
	return 3
}

func etapaIncompleta(rows []models.Nota, etapa int) bool {
	for i := range rows {
		n := &rows[i]
		if n.Etapa == etapa && !n.IsAjuste() && !n.Nota.Graded {
			return true
		}
	}
	return false
}
