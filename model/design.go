// Package model fits linear models to the analysis table: design-matrix
// construction with explicit dummy coding of the enumerated categoricals,
// OLS, and backward stepwise selection on AIC.
package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/invertedv/timeuse/pipeline"
	"github.com/invertedv/timeuse/survey"
)

// Term is one named regressor: a value extracted from an analysis row.
// Categorical fields enter as explicit indicator terms built here, never by
// name lookup at run time.
type Term struct {
	Name  string
	Value func(r *pipeline.AnalysisRow) float64
}

func indicator(name string, f func(r *pipeline.AnalysisRow) bool) Term {
	return Term{Name: name, Value: func(r *pipeline.AnalysisRow) float64 {
		if f(r) {
			return 1
		}

		return 0
	}}
}

// AgeTerm is age in years.
func AgeTerm() Term {
	return Term{Name: "age", Value: func(r *pipeline.AnalysisRow) float64 { return float64(r.Age) }}
}

// FemaleTerm is the sex indicator, male reference.
func FemaleTerm() Term {
	return indicator("female", func(r *pipeline.AnalysisRow) bool { return r.Sex == survey.Female })
}

// EducationTerms are the education indicators, less-than-high-school
// reference.
func EducationTerms() []Term {
	return []Term{
		indicator("educHighSchool", func(r *pipeline.AnalysisRow) bool { return r.Education == survey.HighSchool }),
		indicator("educSomeCollege", func(r *pipeline.AnalysisRow) bool { return r.Education == survey.SomeCollege }),
		indicator("educBachelor", func(r *pipeline.AnalysisRow) bool { return r.Education == survey.Bachelor }),
		indicator("educAdvanced", func(r *pipeline.AnalysisRow) bool { return r.Education == survey.Advanced }),
	}
}

// RaceTerms are the race indicators, white reference.
func RaceTerms() []Term {
	return []Term{
		indicator("raceBlack", func(r *pipeline.AnalysisRow) bool { return r.Race == survey.Black }),
		indicator("raceAsian", func(r *pipeline.AnalysisRow) bool { return r.Race == survey.Asian }),
		indicator("raceOther", func(r *pipeline.AnalysisRow) bool { return r.Race == survey.OtherRace }),
	}
}

// HispanicTerm is the ethnicity indicator.
func HispanicTerm() Term {
	return indicator("hispanic", func(r *pipeline.AnalysisRow) bool { return r.Hispanic })
}

// MarriedTerm is the marital indicator, unmarried (any form) reference.
func MarriedTerm() Term {
	return indicator("married", func(r *pipeline.AnalysisRow) bool { return r.Marital == survey.Married })
}

// CitizenTerm is the citizenship indicator, non-citizen reference.
func CitizenTerm() Term {
	return indicator("citizen", func(r *pipeline.AnalysisRow) bool { return r.Citizenship.Citizen() })
}

// WorkHoursTerm is log(usual weekly work hours + 1).
func WorkHoursTerm() Term {
	return Term{Name: "logWorkHrs", Value: func(r *pipeline.AnalysisRow) float64 { return r.LogWorkHours }}
}

// HouseholdTerm is log(household size + 1).
func HouseholdTerm() Term {
	return Term{Name: "logHHSize", Value: func(r *pipeline.AnalysisRow) float64 { return r.LogHouseholdSize }}
}

// LeisureTerm is the log-hours feature for one activity of interest.
func LeisureTerm(code survey.ActivityCode) Term {
	return Term{Name: code.Label() + "LogHrs", Value: func(r *pipeline.AnalysisRow) float64 {
		return r.Leisure(code).LogHours
	}}
}

// ControlTerms is the baseline covariate set common to every model in the
// sequence.
func ControlTerms() []Term {
	terms := []Term{AgeTerm(), FemaleTerm()}
	terms = append(terms, EducationTerms()...)
	terms = append(terms, RaceTerms()...)
	terms = append(terms, HispanicTerm(), MarriedTerm(), CitizenTerm(), WorkHoursTerm(), HouseholdTerm())

	return terms
}

// Design is a response vector and design matrix ready for OLS. The first
// column is the intercept.
type Design struct {
	YName string
	Names []string

	X *mat.Dense
	Y []float64

	// rows excluded because a term or the response was NaN
	Incomplete int
}

// LogEarnings is the response the analysis models.
func LogEarnings(r *pipeline.AnalysisRow) float64 {
	return r.LogEarnings
}

// NewDesign builds a complete-case design: rows where any term or the
// response is NaN are excluded and counted in Incomplete.
func NewDesign(rows []pipeline.AnalysisRow, yName string, y func(r *pipeline.AnalysisRow) float64, terms ...Term) (*Design, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows in NewDesign")
	}

	names := []string{"intercept"}
	for _, t := range terms {
		names = append(names, t.Name)
	}

	p := len(names)
	var (
		data       []float64
		yv         []float64
		incomplete int
	)

	for ind := range rows {
		r := &rows[ind]

		vals := make([]float64, p)
		vals[0] = 1
		ok := true
		for j, t := range terms {
			v := t.Value(r)
			if math.IsNaN(v) {
				ok = false
				break
			}

			vals[j+1] = v
		}

		yVal := y(r)
		if !ok || math.IsNaN(yVal) {
			incomplete++
			continue
		}

		data = append(data, vals...)
		yv = append(yv, yVal)
	}

	n := len(yv)
	if n <= p {
		return nil, fmt.Errorf("design has %d complete rows for %d parameters", n, p)
	}

	return &Design{
		YName:      yName,
		Names:      names,
		X:          mat.NewDense(n, p, data),
		Y:          yv,
		Incomplete: incomplete,
	}, nil
}

// Drop returns a new design without the named column. The intercept cannot
// be dropped.
func (d *Design) Drop(name string) (*Design, error) {
	if name == "intercept" {
		return nil, fmt.Errorf("cannot drop the intercept")
	}

	pos := -1
	for ind, nm := range d.Names {
		if nm == name {
			pos = ind
			break
		}
	}

	if pos < 0 {
		return nil, fmt.Errorf("column %s not in design", name)
	}

	n, p := d.X.Dims()

	var names []string
	names = append(names, d.Names[:pos]...)
	names = append(names, d.Names[pos+1:]...)

	x := mat.NewDense(n, p-1, nil)
	for j, keep := 0, 0; j < p; j++ {
		if j == pos {
			continue
		}

		for i := 0; i < n; i++ {
			x.Set(i, keep, d.X.At(i, j))
		}
		keep++
	}

	return &Design{YName: d.YName, Names: names, X: x, Y: d.Y, Incomplete: d.Incomplete}, nil
}
