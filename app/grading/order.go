package grading

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

func newCollator() *collate.Collator {
	// Numeric mode makes "A2" sort before "A10".
	return collate.New(language.BrazilianPortuguese, collate.Numeric, collate.Loose)
}

// SortRows orders the rows of one subject for display: the balancing
// row always last, every other row by assessment label, creation time
// and id breaking ties.
func SortRows(rows []models.Nota) {
	cl := newCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.IsAjuste() != b.IsAjuste() {
			return b.IsAjuste()
		}
		if c := cl.CompareString(a.Avaliacao, b.Avaliacao); c != 0 {
			return c < 0
		}
		if !a.CriadoEm.Equal(b.CriadoEm) {
			return a.CriadoEm.Before(b.CriadoEm)
		}
		return a.ID < b.ID
	})
}

// SortDisciplinas orders subject names for display.
func SortDisciplinas(names []string) {
	cl := newCollator()
	sort.SliceStable(names, func(i, j int) bool {
		return cl.CompareString(names[i], names[j]) < 0
	})
}
