package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
)

func TestReportSingleRowMeanEqualsRow(t *testing.T) {
	tbl := &entity.MarksTable{Subjects: []string{"A", "B"}, Rows: [][]int{{80, 60}}}

	rep := BuildReport(tbl)

	assert.Equal(t, []SubjectAverage{{"A", 80}, {"B", 60}}, rep.Averages)

	sum := 0
	for _, s := range rep.Latest {
		sum += s.Score
	}
	assert.Equal(t, 140, sum)
	assert.Equal(t, []SubjectScore{{"A", 80}, {"B", 60}}, rep.Latest)
}

func TestReportAcrossRows(t *testing.T) {
	tbl := &entity.MarksTable{
		Subjects: []string{"A", "B"},
		Rows:     [][]int{{80, 60}, {70, 61}},
	}

	rep := BuildReport(tbl)

	assert.Equal(t, []SubjectAverage{{"A", 75}, {"B", 60.5}}, rep.Averages)
	assert.Equal(t, []SubjectScore{{"A", 80}, {"B", 60}, {"A", 70}, {"B", 61}}, rep.Sequence)
	assert.Equal(t, []SubjectScore{{"A", 70}, {"B", 61}}, rep.Latest)
	assert.Same(t, tbl, rep.Table)
}

func TestReportShortRow(t *testing.T) {
	tbl := &entity.MarksTable{Subjects: []string{"A", "B"}, Rows: [][]int{{80, 60}, {40}}}

	assert.Equal(t, []SubjectAverage{{"A", 60}, {"B", 60}}, Averages(tbl))
	assert.Equal(t, []SubjectScore{{"A", 40}}, LatestBreakdown(tbl))
}

func TestReportEmpty(t *testing.T) {
	assert.Nil(t, Averages(nil))
	assert.Nil(t, Sequence(nil))
	assert.Nil(t, LatestBreakdown(nil))
	assert.Nil(t, LatestBreakdown(&entity.MarksTable{Subjects: []string{"A"}}))
}
