package report

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/invertedv/timeuse"
	"github.com/invertedv/timeuse/pipeline"
	"github.com/invertedv/timeuse/survey"
)

const (
	plotWidth  = 1000.0
	plotHeight = 600.0
)

// EarningsHistogram is the distribution plot the earnings cap is chosen
// from: the pile-up at the top code shows as the right-most spike when the
// cap is set too high.
func EarningsHistogram(frame *timeuse.Frame) (*timeuse.Plot, error) {
	var (
		col *timeuse.Col
		e   error
	)
	if col, e = frame.Column("weeklyEarnings"); e != nil {
		return nil, e
	}

	p := timeuse.NewPlot(
		timeuse.WithTitle("weekly earnings"),
		timeuse.WithWidth(plotWidth),
		timeuse.WithHeight(plotHeight),
		timeuse.WithXlabel("dollars per week"),
		timeuse.WithYlabel("respondents"),
		timeuse.WithLegend(false))

	if e = p.Histogram(col, "weeklyEarnings", "steelblue"); e != nil {
		return nil, e
	}

	return p, nil
}

// LeisureMinutesBar plots the mean diary minutes per day for each activity
// of interest.
func LeisureMinutesBar(res *pipeline.Result) (*timeuse.Plot, error) {
	var (
		labels  []string
		heights []float64
	)

	for _, code := range survey.LeisureCodes {
		x := make([]float64, len(res.Rows))
		for ind := range res.Rows {
			x[ind] = res.Rows[ind].Leisure(code).Minutes
		}

		labels = append(labels, code.Label())
		heights = append(heights, stat.Mean(x, nil))
	}

	p := timeuse.NewPlot(
		timeuse.WithTitle("mean diary minutes per day"),
		timeuse.WithWidth(plotWidth),
		timeuse.WithHeight(plotHeight),
		timeuse.WithYlabel("minutes"),
		timeuse.WithLegend(false))

	if e := p.Bar(labels, heights, "minutes", "steelblue"); e != nil {
		return nil, e
	}

	return p, nil
}

// AgeEarningsProfile plots mean weekly earnings by age as a line, the
// cross-sectional earnings profile.
func AgeEarningsProfile(res *pipeline.Result) (*timeuse.Plot, error) {
	sums := make(map[int]float64)
	counts := make(map[int]float64)

	for ind := range res.Rows {
		r := &res.Rows[ind]
		if math.IsNaN(r.WeeklyEarnings) {
			continue
		}

		sums[r.Age] += r.WeeklyEarnings
		counts[r.Age]++
	}

	var ages []int
	for age := range sums {
		ages = append(ages, age)
	}
	sort.Ints(ages)

	var x, y []float64
	for _, age := range ages {
		x = append(x, float64(age))
		y = append(y, sums[age]/counts[age])
	}

	var (
		xCol, yCol *timeuse.Col
		e          error
	)
	if xCol, e = timeuse.NewCol("age", x); e != nil {
		return nil, e
	}

	if yCol, e = timeuse.NewCol("meanEarnings", y); e != nil {
		return nil, e
	}

	p := timeuse.NewPlot(
		timeuse.WithTitle("mean weekly earnings by age"),
		timeuse.WithWidth(plotWidth),
		timeuse.WithHeight(plotHeight),
		timeuse.WithXlabel("age"),
		timeuse.WithYlabel("dollars per week"),
		timeuse.WithLegend(false))

	if e = p.PlotXY(xCol, yCol, "earnings", "steelblue"); e != nil {
		return nil, e
	}

	return p, nil
}
