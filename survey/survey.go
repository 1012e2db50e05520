// Package survey defines the typed records and enumerated categorical fields
// of the three time-use extracts: the activity diary, the respondent economic
// file, and the household/demographic file. Field codes follow the public-use
// survey variables the extracts are published with.
package survey

import "fmt"

// CaseID identifies one respondent across all three extracts.
type CaseID uint64

// Economic is one row of the respondent economic file.
type Economic struct {
	CaseID CaseID
	Year   int

	Employment   EmploymentType
	MultipleJobs bool
	Student      bool
	LaborStatus  LaborStatus

	// dollars per week; NaN when not reported
	WeeklyEarnings float64
	// usual hours worked per week; NaN when not reported
	WeeklyHours float64
}

// Demographic is one row of the household/demographic file.
type Demographic struct {
	CaseID CaseID

	State         int // FIPS code
	Sex           Sex
	Age           int
	Education     EducationLevel
	Race          RaceGroup
	Hispanic      bool
	BirthCountry  int // birth-country code; 57 is the US
	Citizenship   CitizenshipStatus
	Marital       MaritalStatus
	HouseholdSize int
}

// Activity is one diary entry: minutes spent on one occurrence of an
// activity. The same code can recur within a respondent's diary day.
type Activity struct {
	CaseID  CaseID
	Code    ActivityCode
	Minutes int
}

// ***************** categorical fields *****************

type EmploymentType uint8

const (
	EmploymentUnknown EmploymentType = iota
	FullTime
	PartTime
)

// EmploymentFromCode maps the survey code (1 full time, 2 part time).
func EmploymentFromCode(code int) (EmploymentType, bool) {
	switch code {
	case 1:
		return FullTime, true
	case 2:
		return PartTime, true
	}

	return EmploymentUnknown, false
}

func (e EmploymentType) String() string {
	switch e {
	case FullTime:
		return "fullTime"
	case PartTime:
		return "partTime"
	}

	return "unknown"
}

type LaborStatus uint8

const (
	LaborUnknown LaborStatus = iota
	EmployedAtWork
	EmployedAbsent
	Unemployed
	NotInLaborForce
)

// LaborFromCode maps the survey labor-force status code (1 employed-at work,
// 2 employed-absent, 3-4 unemployed, 5 not in labor force).
func LaborFromCode(code int) (LaborStatus, bool) {
	switch code {
	case 1:
		return EmployedAtWork, true
	case 2:
		return EmployedAbsent, true
	case 3, 4:
		return Unemployed, true
	case 5:
		return NotInLaborForce, true
	}

	return LaborUnknown, false
}

func (l LaborStatus) String() string {
	switch l {
	case EmployedAtWork:
		return "employedAtWork"
	case EmployedAbsent:
		return "employedAbsent"
	case Unemployed:
		return "unemployed"
	case NotInLaborForce:
		return "notInLaborForce"
	}

	return "unknown"
}

// Employed is true for both employed statuses (at work or absent).
func (l LaborStatus) Employed() bool {
	return l == EmployedAtWork || l == EmployedAbsent
}

type Sex uint8

const (
	SexUnknown Sex = iota
	Male
	Female
)

func SexFromCode(code int) (Sex, bool) {
	switch code {
	case 1:
		return Male, true
	case 2:
		return Female, true
	}

	return SexUnknown, false
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	}

	return "unknown"
}

// EducationLevel groups the detailed highest-grade-completed code.
type EducationLevel uint8

const (
	EducationUnknown EducationLevel = iota
	LessThanHS
	HighSchool
	SomeCollege
	Bachelor
	Advanced
)

// EducationFromCode groups the survey education codes: 31-38 below high
// school, 39 high school diploma/GED, 40-42 some college or associate,
// 43 bachelor's, 44-46 advanced.
func EducationFromCode(code int) (EducationLevel, bool) {
	switch {
	case code >= 31 && code <= 38:
		return LessThanHS, true
	case code == 39:
		return HighSchool, true
	case code >= 40 && code <= 42:
		return SomeCollege, true
	case code == 43:
		return Bachelor, true
	case code >= 44 && code <= 46:
		return Advanced, true
	}

	return EducationUnknown, false
}

func (ed EducationLevel) String() string {
	switch ed {
	case LessThanHS:
		return "lessThanHS"
	case HighSchool:
		return "highSchool"
	case SomeCollege:
		return "someCollege"
	case Bachelor:
		return "bachelor"
	case Advanced:
		return "advanced"
	}

	return "unknown"
}

// RaceGroup collapses the detailed race code into the groups the analysis
// uses.
type RaceGroup uint8

const (
	RaceUnknown RaceGroup = iota
	White
	Black
	Asian
	OtherRace
)

// RaceFromCode groups the detailed race code: 1 white, 2 black, 4 asian,
// everything else (including multi-race codes) other.
func RaceFromCode(code int) (RaceGroup, bool) {
	switch {
	case code == 1:
		return White, true
	case code == 2:
		return Black, true
	case code == 4:
		return Asian, true
	case code > 0:
		return OtherRace, true
	}

	return RaceUnknown, false
}

func (r RaceGroup) String() string {
	switch r {
	case White:
		return "white"
	case Black:
		return "black"
	case Asian:
		return "asian"
	case OtherRace:
		return "other"
	}

	return "unknown"
}

type CitizenshipStatus uint8

const (
	CitizenshipUnknown CitizenshipStatus = iota
	CitizenNative
	CitizenNaturalized
	NonCitizen
)

// CitizenshipFromCode maps the survey citizenship code (1-3 native,
// 4 naturalized, 5 not a citizen).
func CitizenshipFromCode(code int) (CitizenshipStatus, bool) {
	switch code {
	case 1, 2, 3:
		return CitizenNative, true
	case 4:
		return CitizenNaturalized, true
	case 5:
		return NonCitizen, true
	}

	return CitizenshipUnknown, false
}

func (c CitizenshipStatus) String() string {
	switch c {
	case CitizenNative:
		return "citizenNative"
	case CitizenNaturalized:
		return "citizenNaturalized"
	case NonCitizen:
		return "nonCitizen"
	}

	return "unknown"
}

// Citizen is true for native and naturalized citizens.
func (c CitizenshipStatus) Citizen() bool {
	return c == CitizenNative || c == CitizenNaturalized
}

type MaritalStatus uint8

const (
	MaritalUnknown MaritalStatus = iota
	Married
	Widowed
	Divorced
	Separated
	NeverMarried
)

// MaritalFromCode maps the survey marital code (1-2 married, spouse present
// or absent, 3 widowed, 4 divorced, 5 separated, 6 never married).
func MaritalFromCode(code int) (MaritalStatus, bool) {
	switch code {
	case 1, 2:
		return Married, true
	case 3:
		return Widowed, true
	case 4:
		return Divorced, true
	case 5:
		return Separated, true
	case 6:
		return NeverMarried, true
	}

	return MaritalUnknown, false
}

func (m MaritalStatus) String() string {
	switch m {
	case Married:
		return "married"
	case Widowed:
		return "widowed"
	case Divorced:
		return "divorced"
	case Separated:
		return "separated"
	case NeverMarried:
		return "neverMarried"
	}

	return "unknown"
}

func (id CaseID) String() string {
	return fmt.Sprintf("%d", id)
}
