package timeuse

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Col is a named column of a Frame.
type Col struct {
	name string

	data *Vector
}

func NewCol(name string, data any) (*Col, error) {
	var (
		v *Vector
		e error
	)
	if v, e = NewVector(data); e != nil {
		return nil, e
	}

	return &Col{name: name, data: v}, nil
}

// Name returns the column name. A non-empty reNameTo renames the column.
func (c *Col) Name(reNameTo string) string {
	if reNameTo != "" {
		c.name = reNameTo
	}

	return c.name
}

func (c *Col) DataType() DataTypes {
	return c.data.VectorType()
}

func (c *Col) Len() int {
	return c.data.Len()
}

func (c *Col) Data() *Vector {
	return c.data
}

func (c *Col) Copy() *Col {
	return &Col{name: c.name, data: c.data.Copy()}
}

// ColSummary holds the univariate summary of a numeric column. NaN entries
// are excluded from the moments and quantiles.
type ColSummary struct {
	Name string

	N       int
	Missing int

	Mean, Std                  float64
	Min, Q25, Median, Q75, Max float64
}

// Summary computes the univariate summary of a float or int column.
func (c *Col) Summary() (*ColSummary, error) {
	if c.DataType() == DTstring {
		return nil, fmt.Errorf("no summary for string column %s", c.name)
	}

	var x []float64
	for _, xv := range c.data.AsFloat() {
		if !math.IsNaN(xv) {
			x = append(x, xv)
		}
	}

	smry := &ColSummary{Name: c.name, N: c.Len(), Missing: c.Len() - len(x)}
	if len(x) == 0 {
		return smry, nil
	}

	sort.Float64s(x)

	smry.Mean = stat.Mean(x, nil)
	smry.Std = stat.StdDev(x, nil)
	smry.Min, smry.Max = x[0], x[len(x)-1]
	smry.Q25 = stat.Quantile(0.25, stat.Empirical, x, nil)
	smry.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	smry.Q75 = stat.Quantile(0.75, stat.Empirical, x, nil)

	return smry, nil
}

func (s *ColSummary) String() string {
	out := fmt.Sprintf("%s: n=%d missing=%d", s.Name, s.N, s.Missing)
	if s.N > s.Missing {
		out += fmt.Sprintf(" mean=%.2f std=%.2f min=%.2f q25=%.2f med=%.2f q75=%.2f max=%.2f",
			s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	}

	return out
}
