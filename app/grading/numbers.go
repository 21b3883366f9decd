package grading

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used by every threshold comparison, so that
// a score exactly on its pass mark is never flagged as below it.
const Epsilon = 1e-9

// ParseDecimal reads a decimal typed by the operator, accepting both
// the Brazilian and the plain convention. When the text carries a
// comma, dots are thousands separators and are stripped before the
// comma becomes the decimal point ("1.234,5" → 1234.5). Without a
// comma the text is parsed as-is, dot as decimal point ("8.500" → 8.5,
// not 8500). Blank input means "not graded" and returns ok=false.
func ParseDecimal(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseDecimalOrZero is ParseDecimal for places where absent input must
// not break a sum.
func ParseDecimalOrZero(text string) float64 {
	v, ok := ParseDecimal(text)
	if !ok {
		return 0
	}
	return v
}

// Round1 rounds to the nearest tenth, halves away from zero.
func Round1(n float64) float64 {
	return math.Round(n*10) / 10
}

// Format1 renders a value with exactly one decimal place after Round1.
func Format1(n float64) string {
	return strconv.FormatFloat(Round1(n), 'f', 1, 64)
}
