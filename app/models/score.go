package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Score is the achieved result of an assessment. An assessment that was
// not graded yet carries an ungraded Score, which serializes as JSON
// null and is stored as SQL NULL.
type Score struct {
	Float64 float64
	Graded  bool
}

// GradedScore builds a graded score.
func GradedScore(v float64) Score {
	return Score{Float64: v, Graded: true}
}

// Ungraded is the zero Score, named for readability at call sites.
var Ungraded = Score{}

// OrZero returns the achieved value, or 0 when the assessment was not
// graded, so aggregation sums never break on pending rows.
func (s Score) OrZero() float64 {
	if !s.Graded {
		return 0
	}
	return s.Float64
}

// MarshalJSON renders ungraded scores as JSON null
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Graded {
		return []byte("null"), nil
	}
	return json.Marshal(s.Float64)
}

func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Score{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Score{Float64: v, Graded: true}
	return nil
}

// Scan implements the Scanner interface for database reading
func (s *Score) Scan(value interface{}) error {
	if value == nil {
		*s = Score{}
		return nil
	}

	switch v := value.(type) {
	case float64:
		*s = Score{Float64: v, Graded: true}
		return nil
	case int64:
		*s = Score{Float64: float64(v), Graded: true}
		return nil
	case []byte:
		// lib/pq hands numeric columns over as text
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Score: %v", string(v), err)
		}
		*s = Score{Float64: f, Graded: true}
		return nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Score: %v", v, err)
		}
		*s = Score{Float64: f, Graded: true}
		return nil
	}

	return fmt.Errorf("cannot scan %T into Score", value)
}

// Value implements the Valuer interface for database writing
func (s Score) Value() (driver.Value, error) {
	if !s.Graded {
		return nil, nil
	}
	return s.Float64, nil
}
