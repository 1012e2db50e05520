package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invertedv/timeuse/survey"
)

const testYear = 2013

// eligibleEcon returns a record that passes every predicate.
func eligibleEcon(id survey.CaseID) survey.Economic {
	return survey.Economic{
		CaseID:         id,
		Year:           testYear,
		Employment:     survey.FullTime,
		MultipleJobs:   false,
		Student:        false,
		LaborStatus:    survey.EmployedAtWork,
		WeeklyEarnings: 800,
		WeeklyHours:    40,
	}
}

func TestFilterRespondents(t *testing.T) {
	base := eligibleEcon(1)

	wrongYear := base
	wrongYear.CaseID, wrongYear.Year = 2, 2012

	partTime := base
	partTime.CaseID, partTime.Employment = 3, survey.PartTime

	moonlighter := base
	moonlighter.CaseID, moonlighter.MultipleJobs = 4, true

	student := base
	student.CaseID, student.Student = 5, true

	unemployed := base
	unemployed.CaseID, unemployed.LaborStatus = 6, survey.Unemployed

	noEarnings := base
	noEarnings.CaseID, noEarnings.WeeklyEarnings = 7, math.NaN()

	absent := base
	absent.CaseID, absent.LaborStatus = 8, survey.EmployedAbsent

	in := []survey.Economic{base, wrongYear, partTime, moonlighter, student, unemployed, noEarnings, absent}
	out := FilterRespondents(in, testYear)

	var ids []survey.CaseID
	for _, r := range out {
		ids = append(ids, r.CaseID)
	}

	// employed-absent passes; every single-predicate violation is excluded
	assert.Equal(t, []survey.CaseID{1, 8}, ids)

	// output is a subset satisfying all predicates simultaneously
	for _, r := range out {
		assert.Equal(t, testYear, r.Year)
		assert.Equal(t, survey.FullTime, r.Employment)
		assert.False(t, r.MultipleJobs)
		assert.False(t, r.Student)
		assert.True(t, r.LaborStatus.Employed())
		assert.False(t, math.IsNaN(r.WeeklyEarnings))
	}
}

// a part-time record is excluded no matter what the other fields say
func TestFilterPartTimeAlwaysExcluded(t *testing.T) {
	r := eligibleEcon(10)
	r.Employment = survey.PartTime
	r.WeeklyEarnings = 5000 // irrelevant

	assert.Empty(t, FilterRespondents([]survey.Economic{r}, testYear))
}

// a year absent from the data is a valid, empty result
func TestFilterAbsentYear(t *testing.T) {
	in := []survey.Economic{eligibleEcon(1), eligibleEcon(2)}

	out := FilterRespondents(in, 1999)
	assert.Empty(t, out)
}

// the input slice is not modified
func TestFilterPure(t *testing.T) {
	in := []survey.Economic{eligibleEcon(1), eligibleEcon(2)}
	want := make([]survey.Economic, len(in))
	copy(want, in)

	_ = FilterRespondents(in, testYear)
	assert.Equal(t, want, in)
}
