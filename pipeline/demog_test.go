package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invertedv/timeuse/survey"
)

func TestSelectDemographics(t *testing.T) {
	rows := []survey.Demographic{
		{CaseID: 2, Sex: survey.Female, Age: 41, HouseholdSize: 3},
		{CaseID: 1, Sex: survey.Male, Age: 30, HouseholdSize: 1},
	}

	byCase, e := SelectDemographics(rows)
	assert.Nil(t, e)
	assert.Len(t, byCase, 2)
	assert.Equal(t, 41, byCase[2].Age)
	assert.Equal(t, survey.Male, byCase[1].Sex)
}

// one demographic row per respondent; a duplicate is structural corruption
func TestSelectDemographicsDuplicate(t *testing.T) {
	rows := []survey.Demographic{
		{CaseID: 5, Age: 30},
		{CaseID: 5, Age: 31},
	}

	_, e := SelectDemographics(rows)
	assert.NotNil(t, e)

	var inv *InvariantError
	assert.ErrorAs(t, e, &inv)
	assert.Equal(t, survey.CaseID(5), inv.CaseID)
}

func TestSelectDemographicsEmpty(t *testing.T) {
	byCase, e := SelectDemographics(nil)
	assert.Nil(t, e)
	assert.Empty(t, byCase)
}
