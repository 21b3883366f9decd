package grading

// Fixed point budget of each term. This is a closed mapping: no route
// or query ever changes it.
var etapaBudgets = map[int]float64{
	1: 30,
	2: 30,
	3: 40,
}

// BudgetForEtapa returns the point budget of a term, or 0 for a term
// number outside 1..3.
func BudgetForEtapa(etapa int) float64 {
	return etapaBudgets[etapa]
}
