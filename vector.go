package timeuse

import (
	"fmt"
	"math"
)

// Vector holds the data of a single column. Missing float values are
// represented as NaN; int and string vectors have no missing marker.
type Vector struct {
	dt DataTypes

	data any
}

func NewVector(data any) (*Vector, error) {
	var dt DataTypes
	if dt = WhatAmI(data); dt == DTunknown {
		return nil, fmt.Errorf("unsupported data type in NewVector")
	}

	// scalars are promoted to length-1 vectors
	switch v := data.(type) {
	case float64:
		data = []float64{v}
	case int:
		data = []int{v}
	case string:
		data = []string{v}
	}

	return &Vector{dt: dt, data: data}, nil
}

func MakeVector(dt DataTypes, n int) *Vector {
	switch dt {
	case DTfloat:
		return &Vector{dt: dt, data: make([]float64, n)}
	case DTint:
		return &Vector{dt: dt, data: make([]int, n)}
	case DTstring:
		return &Vector{dt: dt, data: make([]string, n)}
	default:
		panic(fmt.Errorf("cannot make Vector with data type %s", dt))
	}
}

func (v *Vector) VectorType() DataTypes {
	return v.dt
}

func (v *Vector) Len() int {
	switch v.dt {
	case DTfloat:
		return len(v.data.([]float64))
	case DTint:
		return len(v.data.([]int))
	case DTstring:
		return len(v.data.([]string))
	default:
		panic(fmt.Errorf("unexpected error in Vector.Len"))
	}
}

func (v *Vector) AsAny() any {
	return v.data
}

func (v *Vector) AsFloat() []float64 {
	if v.dt == DTfloat {
		return v.data.([]float64)
	}

	if v.dt == DTint {
		xOut := make([]float64, v.Len())
		for ind, xx := range v.data.([]int) {
			xOut[ind] = float64(xx)
		}

		return xOut
	}

	panic(fmt.Errorf("cannot convert to Vector.AsFloat"))
}

func (v *Vector) AsInt() []int {
	if v.dt == DTint {
		return v.data.([]int)
	}

	panic(fmt.Errorf("cannot convert to Vector.AsInt"))
}

func (v *Vector) AsString() []string {
	if v.dt == DTstring {
		return v.data.([]string)
	}

	panic(fmt.Errorf("cannot convert to Vector.AsString"))
}

func (v *Vector) Element(indx int) any {
	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[indx]
	case DTint:
		return v.data.([]int)[indx]
	case DTstring:
		return v.data.([]string)[indx]
	default:
		panic(fmt.Errorf("error in Element"))
	}
}

func (v *Vector) SetFloat(val float64, indx int) {
	if v.dt != DTfloat {
		panic(fmt.Errorf("vector isn't DTfloat"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]float64)[indx] = val
}

func (v *Vector) SetInt(val, indx int) {
	if v.dt != DTint {
		panic(fmt.Errorf("vector isn't DTint"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]int)[indx] = val
}

func (v *Vector) SetString(val string, indx int) {
	if v.dt != DTstring {
		panic(fmt.Errorf("vector isn't DTstring"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]string)[indx] = val
}

func (v *Vector) Append(data ...any) {
	for ind := 0; ind < len(data); ind++ {
		switch v.dt {
		case DTfloat:
			var (
				x  float64
				ok bool
			)
			if x, ok = toFloat(data[ind]); !ok {
				panic(fmt.Errorf("cannot make float in Append"))
			}

			v.data = append(v.data.([]float64), x)
		case DTint:
			var (
				x  int
				ok bool
			)
			if x, ok = toInt(data[ind]); !ok {
				panic(fmt.Errorf("cannot make int in Append"))
			}

			v.data = append(v.data.([]int), x)
		case DTstring:
			var (
				x  string
				ok bool
			)
			if x, ok = toString(data[ind]); !ok {
				panic(fmt.Errorf("cannot make string in Append"))
			}

			v.data = append(v.data.([]string), x)
		}
	}
}

func (v *Vector) Copy() *Vector {
	vCopy := &Vector{dt: v.dt}
	switch v.dt {
	case DTfloat:
		x := make([]float64, v.Len())
		copy(x, v.data.([]float64))
		vCopy.data = x
	case DTint:
		x := make([]int, v.Len())
		copy(x, v.data.([]int))
		vCopy.data = x
	case DTstring:
		x := make([]string, v.Len())
		copy(x, v.data.([]string))
		vCopy.data = x
	default:
		panic(fmt.Errorf("unexpected error in Vector.Copy"))
	}

	return vCopy
}

func (v *Vector) Swap(i, j int) {
	switch v.dt {
	case DTfloat:
		v.data.([]float64)[i], v.data.([]float64)[j] = v.data.([]float64)[j], v.data.([]float64)[i]
	case DTint:
		v.data.([]int)[i], v.data.([]int)[j] = v.data.([]int)[j], v.data.([]int)[i]
	case DTstring:
		v.data.([]string)[i], v.data.([]string)[j] = v.data.([]string)[j], v.data.([]string)[i]
	default:
		panic(fmt.Errorf("unexpected error in Vector.Swap"))
	}
}

func (v *Vector) Less(i, j int) bool {
	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[i] < v.data.([]float64)[j]
	case DTint:
		return v.data.([]int)[i] < v.data.([]int)[j]
	case DTstring:
		return v.data.([]string)[i] < v.data.([]string)[j]
	default:
		panic(fmt.Errorf("unexpected error in Vector.Less"))
	}
}

// Missing counts the NaN entries of a float vector; other types have none.
func (v *Vector) Missing() int {
	if v.dt != DTfloat {
		return 0
	}

	n := 0
	for _, x := range v.data.([]float64) {
		if math.IsNaN(x) {
			n++
		}
	}

	return n
}
