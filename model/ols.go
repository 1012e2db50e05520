package model

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit holds an estimated linear model.
type Fit struct {
	YName string
	Terms []string

	Coef   []float64
	StdErr []float64
	TStat  []float64

	N, P int

	RSS, TSS float64
	R2       float64
	AdjR2    float64
	Sigma2   float64
	LogLik   float64
	AIC      float64
}

// OLS estimates the design by least squares through the QR decomposition.
// A rank-deficient design is an error, not a warning: a silently pinned
// coefficient would misstate every other one.
func OLS(d *Design) (*Fit, error) {
	n, p := d.X.Dims()

	var qr mat.QR
	qr.Factorize(d.X)

	beta := mat.NewVecDense(p, nil)
	if e := qr.SolveVecTo(beta, false, mat.NewVecDense(n, d.Y)); e != nil {
		return nil, fmt.Errorf("design matrix is singular: %w", e)
	}

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(d.X, beta)

	rss := 0.0
	for i := 0; i < n; i++ {
		r := d.Y[i] - fitted.AtVec(i)
		rss += r * r
	}

	yBar := stat.Mean(d.Y, nil)
	tss := 0.0
	for _, y := range d.Y {
		tss += (y - yBar) * (y - yBar)
	}

	var xtx, xtxInv mat.Dense
	xtx.Mul(d.X.T(), d.X)
	if e := xtxInv.Inverse(&xtx); e != nil {
		return nil, fmt.Errorf("design matrix is singular: %w", e)
	}

	sigma2 := rss / float64(n-p)

	fit := &Fit{
		YName: d.YName,
		Terms: d.Names,
		N:     n,
		P:     p,

		RSS:    rss,
		TSS:    tss,
		R2:     1 - rss/tss,
		AdjR2:  1 - (rss/float64(n-p))/(tss/float64(n-1)),
		Sigma2: sigma2,
	}

	for j := 0; j < p; j++ {
		b := beta.AtVec(j)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))

		fit.Coef = append(fit.Coef, b)
		fit.StdErr = append(fit.StdErr, se)
		fit.TStat = append(fit.TStat, b/se)
	}

	// gaussian log likelihood at the MLE variance rss/n; +1 parameter for it
	nf := float64(n)
	fit.LogLik = -0.5 * nf * (math.Log(2*math.Pi) + math.Log(rss/nf) + 1)
	fit.AIC = -2*fit.LogLik + 2*float64(p+1)

	return fit, nil
}

func (f *Fit) String() string {
	maxLen := 0
	for _, t := range f.Terms {
		if len(t) > maxLen {
			maxLen = len(t)
		}
	}

	out := fmt.Sprintf("response: %s  n=%d\n", f.YName, f.N)
	out += fmt.Sprintf("%s %12s %12s %9s\n", pad("term", maxLen), "coef", "stdErr", "t")
	for j, t := range f.Terms {
		out += fmt.Sprintf("%s %12.4f %12.4f %9.2f\n", pad(t, maxLen), f.Coef[j], f.StdErr[j], f.TStat[j])
	}

	out += fmt.Sprintf("R2=%.4f adjR2=%.4f AIC=%.1f\n", f.R2, f.AdjR2, f.AIC)

	return out
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
