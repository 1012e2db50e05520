package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestStepwise(t *testing.T) {
	// y depends on x1 only; x2 is a patterned junk regressor
	n := 16
	x2pat := []float64{1, 1, -1, -1}

	data := make([]float64, 0, 3*n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x1 := float64(i + 1)
		x2 := x2pat[i%4]

		e := 0.3
		if i%2 == 1 {
			e = -0.3
		}
		y[i] = 1 + 0.5*x1 + e

		data = append(data, 1, x1, x2)
	}

	d := &Design{
		YName: "y",
		Names: []string{"intercept", "x1", "x2"},
		X:     mat.NewDense(n, 3, data),
		Y:     y,
	}

	full, e := OLS(d)
	assert.Nil(t, e)

	fit, e := Stepwise(d)
	assert.Nil(t, e)

	// the junk regressor goes, the signal and the intercept stay
	assert.Equal(t, []string{"intercept", "x1"}, fit.Terms)
	assert.Less(t, fit.AIC, full.AIC)
	assert.InDelta(t, 0.493, fit.Coef[1], 0.01)
}

// a design already at its AIC minimum is returned unchanged
func TestStepwiseNoImprovement(t *testing.T) {
	d, _, _ := simpleDesign()

	full, e := OLS(d)
	assert.Nil(t, e)

	fit, e := Stepwise(d)
	assert.Nil(t, e)

	assert.Equal(t, full.Terms, fit.Terms)
	assert.InDelta(t, full.AIC, fit.AIC, 1e-12)
}
