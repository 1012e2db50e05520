package pipeline

import (
	"math"

	"github.com/invertedv/timeuse/survey"
)

// FilterRespondents returns the economic rows eligible for the analysis
// population: interviewed in year, full time, one job, not a student,
// employed (at work or absent), with reported weekly earnings. The
// predicates are conjunctive and independent, so order doesn't matter.
// A year absent from the data yields an empty result, not an error.
func FilterRespondents(econ []survey.Economic, year int) []survey.Economic {
	var out []survey.Economic
	for _, r := range econ {
		if eligible(&r, year) {
			out = append(out, r)
		}
	}

	return out
}

func eligible(r *survey.Economic, year int) bool {
	if r.Year != year {
		return false
	}

	if r.Employment != survey.FullTime {
		return false
	}

	if r.MultipleJobs {
		return false
	}

	if r.Student {
		return false
	}

	if !r.LaborStatus.Employed() {
		return false
	}

	// earnings must be reported, not a missing-value marker
	return !math.IsNaN(r.WeeklyEarnings)
}
