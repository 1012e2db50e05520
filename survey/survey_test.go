package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityCodeColumn(t *testing.T) {
	// leading zeros are restored in the column name
	assert.Equal(t, "t010101", CodeSleep.Column())
	assert.Equal(t, "t120303", CodeTV.Column())
	assert.Equal(t, "t120402", CodeGambling.Column())
}

func TestActivityCodeLabel(t *testing.T) {
	assert.Equal(t, "sleep", CodeSleep.Label())
	assert.Equal(t, "tv", CodeTV.Label())
	assert.Equal(t, "social", CodeSocializing.Label())

	// a code outside the set of interest falls back to the column name
	assert.Equal(t, "t050101", ActivityCode(50101).Label())
}

func TestLeisureCodesComplete(t *testing.T) {
	assert.Len(t, LeisureCodes, 7)

	seen := make(map[ActivityCode]bool)
	for _, code := range LeisureCodes {
		assert.False(t, seen[code])
		seen[code] = true
	}
}

func TestEducationFromCode(t *testing.T) {
	// boundaries of the grouped ranges
	cases := []struct {
		code int
		want EducationLevel
		ok   bool
	}{
		{30, EducationUnknown, false},
		{31, LessThanHS, true},
		{38, LessThanHS, true},
		{39, HighSchool, true},
		{40, SomeCollege, true},
		{42, SomeCollege, true},
		{43, Bachelor, true},
		{44, Advanced, true},
		{46, Advanced, true},
		{47, EducationUnknown, false},
		{-1, EducationUnknown, false},
	}

	for _, c := range cases {
		got, ok := EducationFromCode(c.code)
		assert.Equal(t, c.want, got, "code %d", c.code)
		assert.Equal(t, c.ok, ok, "code %d", c.code)
	}
}

func TestLaborFromCode(t *testing.T) {
	atWork, ok := LaborFromCode(1)
	assert.True(t, ok)
	assert.True(t, atWork.Employed())

	absent, ok := LaborFromCode(2)
	assert.True(t, ok)
	assert.True(t, absent.Employed())

	layoff, ok := LaborFromCode(3)
	assert.True(t, ok)
	assert.Equal(t, Unemployed, layoff)
	assert.False(t, layoff.Employed())

	looking, ok := LaborFromCode(4)
	assert.True(t, ok)
	assert.Equal(t, Unemployed, looking)

	nilf, ok := LaborFromCode(5)
	assert.True(t, ok)
	assert.Equal(t, NotInLaborForce, nilf)

	_, ok = LaborFromCode(-1)
	assert.False(t, ok)
}

func TestRaceFromCode(t *testing.T) {
	w, _ := RaceFromCode(1)
	assert.Equal(t, White, w)

	b, _ := RaceFromCode(2)
	assert.Equal(t, Black, b)

	a, _ := RaceFromCode(4)
	assert.Equal(t, Asian, a)

	// american indian and the multi-race codes collapse to other
	o, ok := RaceFromCode(3)
	assert.True(t, ok)
	assert.Equal(t, OtherRace, o)

	o, ok = RaceFromCode(12)
	assert.True(t, ok)
	assert.Equal(t, OtherRace, o)

	_, ok = RaceFromCode(-1)
	assert.False(t, ok)
}

func TestCitizenshipFromCode(t *testing.T) {
	for code := 1; code <= 3; code++ {
		c, ok := CitizenshipFromCode(code)
		assert.True(t, ok)
		assert.Equal(t, CitizenNative, c)
		assert.True(t, c.Citizen())
	}

	nat, _ := CitizenshipFromCode(4)
	assert.Equal(t, CitizenNaturalized, nat)
	assert.True(t, nat.Citizen())

	non, _ := CitizenshipFromCode(5)
	assert.Equal(t, NonCitizen, non)
	assert.False(t, non.Citizen())
}

func TestMaritalFromCode(t *testing.T) {
	// spouse present and spouse absent are both married
	m1, _ := MaritalFromCode(1)
	m2, _ := MaritalFromCode(2)
	assert.Equal(t, Married, m1)
	assert.Equal(t, Married, m2)

	nm, _ := MaritalFromCode(6)
	assert.Equal(t, NeverMarried, nm)

	_, ok := MaritalFromCode(7)
	assert.False(t, ok)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "fullTime", FullTime.String())
	assert.Equal(t, "female", Female.String())
	assert.Equal(t, "bachelor", Bachelor.String())
	assert.Equal(t, "unknown", EmploymentUnknown.String())
	assert.Equal(t, "unknown", Sex(99).String())
}
