package timeuse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCol(t *testing.T) {
	c, e := NewCol("x", []float64{1, 2, 3})
	assert.Nil(t, e)
	assert.Equal(t, "x", c.Name(""))
	assert.Equal(t, DTfloat, c.DataType())
	assert.Equal(t, 3, c.Len())

	// scalars promote to length-1 columns
	c, e = NewCol("one", 42)
	assert.Nil(t, e)
	assert.Equal(t, DTint, c.DataType())
	assert.Equal(t, 1, c.Len())

	_, e = NewCol("bad", []bool{true})
	assert.NotNil(t, e)
}

func TestColRename(t *testing.T) {
	c, e := NewCol("old", []int{1})
	assert.Nil(t, e)

	assert.Equal(t, "new", c.Name("new"))
	assert.Equal(t, "new", c.Name(""))
}

func TestColSummary(t *testing.T) {
	c, e := NewCol("x", []float64{4, 1, math.NaN(), 3, 2})
	assert.Nil(t, e)

	s, e := c.Summary()
	assert.Nil(t, e)

	assert.Equal(t, 5, s.N)
	assert.Equal(t, 1, s.Missing)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	// int columns summarize too; string columns don't
	ci, e := NewCol("n", []int{1, 2, 3})
	assert.Nil(t, e)

	s, e = ci.Summary()
	assert.Nil(t, e)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)

	cs, e := NewCol("s", []string{"a"})
	assert.Nil(t, e)

	_, e = cs.Summary()
	assert.NotNil(t, e)
}

func TestColSummaryAllMissing(t *testing.T) {
	c, e := NewCol("x", []float64{math.NaN(), math.NaN()})
	assert.Nil(t, e)

	s, e := c.Summary()
	assert.Nil(t, e)
	assert.Equal(t, 2, s.Missing)
	assert.Equal(t, 0.0, s.Mean)
}

func TestVectorMissing(t *testing.T) {
	v, e := NewVector([]float64{1, math.NaN(), 3})
	assert.Nil(t, e)
	assert.Equal(t, 1, v.Missing())

	vi, e := NewVector([]int{1, 2})
	assert.Nil(t, e)
	assert.Zero(t, vi.Missing())
}

func TestMakeVector(t *testing.T) {
	v := MakeVector(DTfloat, 3)
	assert.Equal(t, 3, v.Len())

	v.SetFloat(1.5, 1)
	assert.Equal(t, []float64{0, 1.5, 0}, v.AsFloat())

	s := MakeVector(DTstring, 2)
	s.SetString("a", 0)
	assert.Equal(t, []string{"a", ""}, s.AsString())

	// AsAny hands back the underlying slice
	assert.Equal(t, []string{"a", ""}, s.AsAny())

	i := MakeVector(DTint, 1)
	assert.Equal(t, DTint, i.VectorType())

	assert.Panics(t, func() { MakeVector(DTunknown, 1) })
	assert.Panics(t, func() { s.SetString("x", 5) })
	assert.Panics(t, func() { v.SetString("x", 0) })
}

func TestVectorAppendCopy(t *testing.T) {
	v, e := NewVector([]int{1, 2})
	assert.Nil(t, e)

	v.Append(3)
	assert.Equal(t, []int{1, 2, 3}, v.AsInt())

	cp := v.Copy()
	cp.SetInt(-1, 0)
	assert.Equal(t, 1, v.AsInt()[0])

	// ints read as floats; the reverse panics
	assert.Equal(t, []float64{1, 2, 3}, v.AsFloat())
	assert.Panics(t, func() { v.AsString() })
}
