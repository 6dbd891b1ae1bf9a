package charts

import (
	"bytes"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPage(t *testing.T) {
	pts := []Point{{"FOML", 70}, {"AAI", 80}}

	var buf bytes.Buffer
	err := RenderPage(&buf, "alice",
		Bar("Average Marks", "Average", pts),
		Line("Marks Trend", "Score", append(pts, pts...)),
		Pie("Latest Breakdown", "Latest", pts),
	)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "Average Marks")
	assert.Contains(t, html, "Marks Trend")
	assert.Contains(t, html, "Latest Breakdown")
	assert.Contains(t, html, "FOML")
}

func TestPieUsesLabelsAsNames(t *testing.T) {
	pie := Pie("t", "s", []Point{{"A", 80}, {"B", 60}})
	require.Len(t, pie.MultiSeries, 1)

	data, ok := pie.MultiSeries[0].Data.([]opts.PieData)
	require.True(t, ok)
	assert.Equal(t, "A", data[0].Name)
	assert.Equal(t, 60.0, data[1].Value)
}
