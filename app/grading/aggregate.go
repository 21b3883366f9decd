package grading

import (
	"time"

	"github.com/fgagliano/Notas-Bernoulli/app/models"
)

// Edit is one unsaved in-progress change to a row's numeric fields.
// A nil pointer leaves the persisted value in effect; a pointer to an
// ungraded Score clears the grade for display purposes.
type Edit struct {
	ValorMax *float64
	Nota     *models.Score
}

// Edits is the operator's focus buffer, keyed by record id.
type Edits map[int64]Edit

func (e Edits) effectiveMax(n *models.Nota) float64 {
	if ed, ok := e[n.ID]; ok && ed.ValorMax != nil {
		return *ed.ValorMax
	}
	return n.ValorMax
}

func (e Edits) effectiveNota(n *models.Nota) models.Score {
	if ed, ok := e[n.ID]; ok && ed.Nota != nil {
		return *ed.Nota
	}
	return n.Nota
}

// Row is one assessment prepared for display: effective values with
// any pending edit applied, plus the derived threshold columns. The
// cumulative columns stay nil on rows whose own score is absent, so a
// pending assessment never suggests false progress.
type Row struct {
	ID        int64       `json:"id"`
	CriadoEm  time.Time   `json:"criado_em"`
	Avaliacao string      `json:"avaliacao"`
	Tipo      models.Kind `json:"tipo"`
	Obs       string      `json:"obs"`

	ValorMax float64      `json:"valor_max"`
	Nota     models.Score `json:"nota"`

	Media           float64  `json:"media"`
	AbaixoMedia     bool     `json:"abaixo_media"`
	MediaAcumulada  *float64 `json:"media_acumulada"`
	NotaAcumulada   *float64 `json:"nota_acumulada"`
	AbaixoAcumulado bool     `json:"abaixo_acumulado"`
}

// Disciplina is one subject of the grading view: its ordered rows and
// the running total of maxima measured against the term budget.
type Disciplina struct {
	Nome       string  `json:"disciplina"`
	Avaliacoes []Row   `json:"avaliacoes"`
	SomaMax    float64 `json:"soma_max"`
	ValorTotal float64 `json:"valor_total"`
	Diferenca  float64 `json:"diferenca"`
}

// ComputeDisciplinas turns the raw rows of one student/year/term into
// the grading view: rows bucketed per subject, ordered, with pass
// thresholds and running cumulatives counting only graded assessments.
// edits may be nil when there is no pending operator input.
func ComputeDisciplinas(rows []models.Nota, edits Edits, etapa int) []Disciplina {
	budget := BudgetForEtapa(etapa)

	buckets := make(map[string][]models.Nota)
	for _, n := range rows {
		key := n.DisciplinaKey()
		buckets[key] = append(buckets[key], n)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	SortDisciplinas(names)

	out := make([]Disciplina, 0, len(names))
	for _, name := range names {
		group := buckets[name]
		SortRows(group)
		out = append(out, computeDisciplina(name, group, edits, budget))
	}
	return out
}

func computeDisciplina(nome string, rows []models.Nota, edits Edits, budget float64) Disciplina {
	d := Disciplina{
		Nome:       nome,
		Avaliacoes: make([]Row, 0, len(rows)),
		ValorTotal: budget,
	}

	// Running sums over the graded prefix only. The cumulative pass
	// threshold adds per-row rounded thresholds, not a rounded sum.
	var mediaAcum, notaAcum float64

	for i := range rows {
		n := &rows[i]
		max := edits.effectiveMax(n)
		nota := edits.effectiveNota(n)
		media := Round1(max * 0.6)

		row := Row{
			ID:        n.ID,
			CriadoEm:  n.CriadoEm,
			Avaliacao: n.Avaliacao,
			Tipo:      n.Tipo,
			Obs:       n.Obs,
			ValorMax:  max,
			Nota:      nota,
			Media:     media,
		}

		if nota.Graded {
			row.AbaixoMedia = nota.Float64 < media-Epsilon

			mediaAcum += media
			notaAcum += nota.Float64
			ma := Round1(mediaAcum)
			na := Round1(notaAcum)
			row.MediaAcumulada = &ma
			row.NotaAcumulada = &na
			row.AbaixoAcumulado = na < ma-Epsilon
		}

		d.SomaMax += max
		d.Avaliacoes = append(d.Avaliacoes, row)
	}

	d.Diferenca = Round1(budget - d.SomaMax)
	return d
}
