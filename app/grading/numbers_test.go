package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		// comma present: dots are thousands separators
		{"1.234,5", 1234.5, true},
		{"8,5", 8.5, true},
		{"0,05", 0.05, true},
		{"1.000.000,25", 1000000.25, true},
		// no comma: dot is the decimal point, parsed as-is
		{"8.5", 8.5, true},
		{"8.500", 8.5, true},
		{"10", 10, true},
		{"-3.2", -3.2, true},
		// blank means "not graded"
		{"", 0, false},
		{"   ", 0, false},
		// garbage
		{"abc", 0, false},
		{"1,2,3", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseDecimal(tc.in)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.in)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-12, "value for %q", tc.in)
		}
	}
}

func TestParseDecimalOrZero(t *testing.T) {
	assert.Equal(t, 0.0, ParseDecimalOrZero(""))
	assert.Equal(t, 0.0, ParseDecimalOrZero("x"))
	assert.Equal(t, 4.8, ParseDecimalOrZero("4,8"))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 0.1, Round1(0.05))
	assert.Equal(t, 2.3, Round1(2.34))
	assert.Equal(t, 2.4, Round1(2.35))
	assert.Equal(t, -0.1, Round1(-0.05))
	assert.Equal(t, 6.0, Round1(6.0))
}

func TestFormat1(t *testing.T) {
	assert.Equal(t, "2.0", Format1(2.0))
	assert.Equal(t, "2.3", Format1(2.34))
	assert.Equal(t, "0.1", Format1(0.05))
	assert.Equal(t, "10.0", Format1(10))
}
