package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/stretchr/testify/assert"

	"github.com/invertedv/timeuse"
	"github.com/invertedv/timeuse/pipeline"
)

func TestEarningsHistogram(t *testing.T) {
	p, e := EarningsHistogram(testFrame(t))
	assert.Nil(t, e)
	assert.Len(t, p.Fig.Data, 1)

	fileName := filepath.Join(t.TempDir(), "earnings.html")
	assert.Nil(t, p.Save(fileName))

	info, e := os.Stat(fileName)
	assert.Nil(t, e)
	assert.Greater(t, info.Size(), int64(0))
}

func TestEarningsHistogramMissingColumn(t *testing.T) {
	earn, e := timeuse.NewCol("otherName", []float64{1, 2})
	assert.Nil(t, e)

	frame, e := timeuse.NewFrame(earn)
	assert.Nil(t, e)

	_, e = EarningsHistogram(frame)
	assert.NotNil(t, e)
}

func TestLeisureMinutesBar(t *testing.T) {
	res := &pipeline.Result{
		Rows: []pipeline.AnalysisRow{
			{Sleep: pipeline.Feature{Minutes: 400}, TV: pipeline.Feature{Minutes: 100}},
			{Sleep: pipeline.Feature{Minutes: 500}, TV: pipeline.Feature{Minutes: 200}},
		},
	}

	p, e := LeisureMinutesBar(res)
	assert.Nil(t, e)
	assert.Len(t, p.Fig.Data, 1)
}

func TestAgeEarningsProfile(t *testing.T) {
	res := &pipeline.Result{
		Rows: []pipeline.AnalysisRow{
			{Age: 40, WeeklyEarnings: 900},
			{Age: 30, WeeklyEarnings: 700},
			{Age: 30, WeeklyEarnings: 800},
			{Age: 50, WeeklyEarnings: math.NaN()}, // excluded from the means
		},
	}

	p, e := AgeEarningsProfile(res)
	assert.Nil(t, e)
	assert.Len(t, p.Fig.Data, 1)

	tr, ok := p.Fig.Data[0].(*grob.Scatter)
	assert.True(t, ok)

	// ascending ages, per-age means
	assert.Equal(t, []float64{30, 40}, tr.X)
	assert.Equal(t, []float64{750, 900}, tr.Y)

	assert.Equal(t, plotWidth, p.Lay.Width)
	assert.Equal(t, plotHeight, p.Lay.Height)
}
