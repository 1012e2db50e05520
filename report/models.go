// Package report renders the downstream artifacts of a run: the model
// build-up sequence, comparison tables, exploratory plots, and the xlsx
// workbook. It consumes the analysis table by its documented columns only.
package report

import (
	"fmt"

	"github.com/invertedv/timeuse/model"
	"github.com/invertedv/timeuse/pipeline"
	"github.com/invertedv/timeuse/survey"
)

// ModelSpec is one model of the build-up sequence.
type ModelSpec struct {
	Label string
	Terms []model.Term
}

// Sequence is the nested model build-up: demographic/work controls first,
// then the leisure terms added one block at a time, ending with the full
// set of seven.
func Sequence() []ModelSpec {
	adds := [][]survey.ActivityCode{
		nil,
		{survey.CodeSleep},
		{survey.CodeTV},
		{survey.CodeSocializing},
		{survey.CodeReading},
		{survey.CodeMusic, survey.CodeTobaccoDrug, survey.CodeGambling},
	}

	labels := []string{"controls", "+ sleep", "+ tv", "+ social", "+ reading", "full"}

	var (
		specs []ModelSpec
		terms []model.Term
	)
	terms = append(terms, model.ControlTerms()...)

	for ind, block := range adds {
		for _, code := range block {
			terms = append(terms, model.LeisureTerm(code))
		}

		cp := make([]model.Term, len(terms))
		copy(cp, terms)

		specs = append(specs, ModelSpec{Label: labels[ind], Terms: cp})
	}

	return specs
}

// FitSequence estimates each model of the sequence on the analysis rows.
func FitSequence(res *pipeline.Result) ([]ModelSpec, []*model.Fit, error) {
	specs := Sequence()

	var fits []*model.Fit
	for _, spec := range specs {
		var (
			d *model.Design
			f *model.Fit
			e error
		)
		if d, e = model.NewDesign(res.Rows, "logEarn", model.LogEarnings, spec.Terms...); e != nil {
			return nil, nil, fmt.Errorf("model %q: %w", spec.Label, e)
		}

		if f, e = model.OLS(d); e != nil {
			return nil, nil, fmt.Errorf("model %q: %w", spec.Label, e)
		}

		fits = append(fits, f)
	}

	return specs, fits, nil
}

// StepwiseFull runs backward AIC selection on the full model.
func StepwiseFull(res *pipeline.Result) (*model.Fit, error) {
	specs := Sequence()
	full := specs[len(specs)-1]

	var (
		d *model.Design
		e error
	)
	if d, e = model.NewDesign(res.Rows, "logEarn", model.LogEarnings, full.Terms...); e != nil {
		return nil, e
	}

	return model.Stepwise(d)
}

// ComparisonTable summarizes the sequence side by side.
func ComparisonTable(specs []ModelSpec, fits []*model.Fit) string {
	out := fmt.Sprintf("%-12s %6s %6s %9s %9s %12s\n", "model", "n", "terms", "R2", "adjR2", "AIC")
	for ind, f := range fits {
		out += fmt.Sprintf("%-12s %6d %6d %9.4f %9.4f %12.1f\n",
			specs[ind].Label, f.N, f.P, f.R2, f.AdjR2, f.AIC)
	}

	return out
}
