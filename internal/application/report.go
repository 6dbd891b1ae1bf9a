package application

import "github.com/oksasatya/student-marks-dashboard/internal/domain/entity"

// SubjectAverage is one bar of the averages chart.
type SubjectAverage struct {
	Subject string  `json:"subject"`
	Average float64 `json:"average"`
}

// SubjectScore is one point of the line chart or one pie slice.
type SubjectScore struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
}

// Report is everything the reporting screen shows. Nothing here is persisted.
type Report struct {
	Table    *entity.MarksTable `json:"table"`
	Averages []SubjectAverage   `json:"averages"`
	Sequence []SubjectScore     `json:"sequence"`
	Latest   []SubjectScore     `json:"latest"`
}

func BuildReport(t *entity.MarksTable) *Report {
	return &Report{
		Table:    t,
		Averages: Averages(t),
		Sequence: Sequence(t),
		Latest:   LatestBreakdown(t),
	}
}

// Averages is the arithmetic mean per subject over all rows, in header order.
// Short rows count as missing, not zero.
func Averages(t *entity.MarksTable) []SubjectAverage {
	if t == nil {
		return nil
	}
	out := make([]SubjectAverage, len(t.Subjects))
	for j, s := range t.Subjects {
		sum, n := 0, 0
		for _, row := range t.Rows {
			if j < len(row) {
				sum += row[j]
				n++
			}
		}
		out[j] = SubjectAverage{Subject: s}
		if n > 0 {
			out[j].Average = float64(sum) / float64(n)
		}
	}
	return out
}

// Sequence flattens every row into (subject, score) pairs, row by row.
func Sequence(t *entity.MarksTable) []SubjectScore {
	if t == nil {
		return nil
	}
	out := make([]SubjectScore, 0, len(t.Rows)*len(t.Subjects))
	for _, row := range t.Rows {
		for j, s := range t.Subjects {
			if j < len(row) {
				out = append(out, SubjectScore{Subject: s, Score: row[j]})
			}
		}
	}
	return out
}

// LatestBreakdown is the last row as pie slices.
func LatestBreakdown(t *entity.MarksTable) []SubjectScore {
	if t == nil || len(t.Rows) == 0 {
		return nil
	}
	row := t.Rows[len(t.Rows)-1]
	out := make([]SubjectScore, 0, len(t.Subjects))
	for j, s := range t.Subjects {
		if j < len(row) {
			out = append(out, SubjectScore{Subject: s, Score: row[j]})
		}
	}
	return out
}
