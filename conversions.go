package timeuse

import (
	"fmt"
	"strconv"
)

// DataTypes are the column types the package supports.
type DataTypes uint8

// values of DataTypes
const (
	DTunknown DataTypes = 0 + iota
	DTfloat
	DTint
	DTstring
)

// max value of DataTypes type
const MaxDT = DTstring

func (dt DataTypes) String() string {
	switch dt {
	case DTfloat:
		return "DTfloat"
	case DTint:
		return "DTint"
	case DTstring:
		return "DTstring"
	default:
		return "DTunknown"
	}
}

// *********** Conversions ***********

func toFloat(x any) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if f, e := strconv.ParseFloat(v, 64); e == nil {
			return f, true
		}
	}

	return 0, false
}

func toInt(x any) (int, bool) {
	switch v := x.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case string:
		if i, e := strconv.ParseInt(v, 10, 64); e == nil {
			return int(i), true
		}
	}

	return 0, false
}

func toString(x any) (string, bool) {
	switch v := x.(type) {
	case string:
		return v, true
	case float64:
		return fmt.Sprintf("%v", v), true
	case int:
		return fmt.Sprintf("%d", v), true
	}

	return "", false
}

// WhatAmI returns the DataTypes value corresponding to val, scalar or slice.
func WhatAmI(val any) DataTypes {
	switch val.(type) {
	case float64, []float64:
		return DTfloat
	case int, []int:
		return DTint
	case string, []string:
		return DTstring
	default:
		return DTunknown
	}
}
