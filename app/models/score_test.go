package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreJSON(t *testing.T) {
	ungraded, err := json.Marshal(Ungraded)
	require.NoError(t, err)
	assert.Equal(t, "null", string(ungraded))

	graded, err := json.Marshal(GradedScore(8.5))
	require.NoError(t, err)
	assert.Equal(t, "8.5", string(graded))

	var s Score
	require.NoError(t, json.Unmarshal([]byte("null"), &s))
	assert.False(t, s.Graded)

	require.NoError(t, json.Unmarshal([]byte("7.25"), &s))
	assert.True(t, s.Graded)
	assert.Equal(t, 7.25, s.Float64)
}

func TestScoreScan(t *testing.T) {
	var s Score
	require.NoError(t, s.Scan(nil))
	assert.False(t, s.Graded)

	// lib/pq delivers numerics as text
	require.NoError(t, s.Scan([]byte("6.4")))
	assert.True(t, s.Graded)
	assert.Equal(t, 6.4, s.Float64)

	require.NoError(t, s.Scan(float64(3)))
	assert.Equal(t, 3.0, s.Float64)

	assert.Error(t, s.Scan([]byte("abc")))
}

func TestScoreOrZero(t *testing.T) {
	assert.Equal(t, 0.0, Ungraded.OrZero())
	assert.Equal(t, 5.5, GradedScore(5.5).OrZero())
}
