package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invertedv/timeuse/model"
)

func TestSequence(t *testing.T) {
	specs := Sequence()
	assert.Len(t, specs, 6)

	labels := []string{"controls", "+ tv", "full"}
	assert.Equal(t, labels[0], specs[0].Label)
	assert.Equal(t, labels[1], specs[2].Label)
	assert.Equal(t, labels[2], specs[5].Label)

	// each model nests the one before it
	for ind := 1; ind < len(specs); ind++ {
		prev, cur := specs[ind-1].Terms, specs[ind].Terms
		assert.Greater(t, len(cur), len(prev))

		for j := range prev {
			assert.Equal(t, prev[j].Name, cur[j].Name)
		}
	}

	// the controls model has no leisure terms; the full model has all seven
	nControls := len(specs[0].Terms)
	assert.Equal(t, nControls+7, len(specs[5].Terms))

	full := specs[5]
	names := make(map[string]bool)
	for _, term := range full.Terms {
		names[term.Name] = true
	}
	for _, want := range []string{"sleepLogHrs", "tvLogHrs", "socialLogHrs", "readingLogHrs", "musicLogHrs", "tobaccoLogHrs", "gamblingLogHrs"} {
		assert.True(t, names[want], want)
	}
}

func TestComparisonTable(t *testing.T) {
	specs := []ModelSpec{{Label: "controls"}, {Label: "full"}}
	fits := []*model.Fit{
		{YName: "logEarn", N: 100, P: 3, R2: 0.10, AdjR2: 0.08, AIC: 250.0},
		{YName: "logEarn", N: 100, P: 5, R2: 0.20, AdjR2: 0.17, AIC: 240.0},
	}

	s := ComparisonTable(specs, fits)
	assert.Contains(t, s, "controls")
	assert.Contains(t, s, "full")
	assert.Contains(t, s, "0.2000")
	assert.Contains(t, s, "240.0")
}
