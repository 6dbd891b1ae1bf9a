package entity

import (
	"errors"
	"fmt"
)

var ErrInvalidMarks = errors.New("invalid marks")

// Subjects is the fixed subject set, in display and storage order.
var Subjects = []string{"FOML", "AAI", "VCC", "BDMS", "DHV"}

const (
	MinScore     = 0
	MaxScore     = 100
	DefaultScore = 50
)

// Marks maps a subject name to the score of one submission.
type Marks map[string]int

// DefaultMarks returns the initial input value for every subject.
func DefaultMarks() Marks {
	m := make(Marks, len(Subjects))
	for _, s := range Subjects {
		m[s] = DefaultScore
	}
	return m
}

// Validate checks that m names exactly the fixed subjects and that every
// score lies in [MinScore, MaxScore].
func (m Marks) Validate() error {
	if len(m) != len(Subjects) {
		return fmt.Errorf("%w: expected %d subjects, got %d", ErrInvalidMarks, len(Subjects), len(m))
	}
	for _, s := range Subjects {
		v, ok := m[s]
		if !ok {
			return fmt.Errorf("%w: missing subject %s", ErrInvalidMarks, s)
		}
		if v < MinScore || v > MaxScore {
			return fmt.Errorf("%w: %s score %d out of range", ErrInvalidMarks, s, v)
		}
	}
	return nil
}

// Average is the mean score over the subjects present in m.
func (m Marks) Average() float64 {
	if len(m) == 0 {
		return 0
	}
	total := 0
	for _, v := range m {
		total += v
	}
	return float64(total) / float64(len(m))
}

// MarksTable is the stored tabular form of a student's submissions:
// a header of subject names and one row of scores per submission.
type MarksTable struct {
	Subjects []string `json:"subjects"`
	Rows     [][]int  `json:"rows"`
}

// NewMarksTable builds a single-row table in Subjects order.
func NewMarksTable(m Marks) *MarksTable {
	row := make([]int, len(Subjects))
	for i, s := range Subjects {
		row[i] = m[s]
	}
	return &MarksTable{
		Subjects: append([]string(nil), Subjects...),
		Rows:     [][]int{row},
	}
}

// Row returns row i as a subject map, or nil when out of range.
func (t *MarksTable) Row(i int) Marks {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return nil
	}
	m := make(Marks, len(t.Subjects))
	for j, s := range t.Subjects {
		if j < len(t.Rows[i]) {
			m[s] = t.Rows[i][j]
		}
	}
	return m
}

// Latest returns the most recent submission, or nil for an empty table.
func (t *MarksTable) Latest() Marks {
	if t == nil {
		return nil
	}
	return t.Row(len(t.Rows) - 1)
}
