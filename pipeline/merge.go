package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/invertedv/timeuse"
	"github.com/invertedv/timeuse/survey"
)

// Feature is one activity of interest expressed in the three scales the
// models use.
type Feature struct {
	Minutes  float64
	Hours    float64
	LogHours float64
}

// AnalysisRow is one eligible respondent in the final table.
type AnalysisRow struct {
	CaseID survey.CaseID

	WeeklyEarnings float64
	LogEarnings    float64
	WeeklyHours    float64
	LogWorkHours   float64

	State            int
	Sex              survey.Sex
	Age              int
	Education        survey.EducationLevel
	Race             survey.RaceGroup
	Hispanic         bool
	BirthCountry     int
	Citizenship      survey.CitizenshipStatus
	Marital          survey.MaritalStatus
	HouseholdSize    int
	LogHouseholdSize float64

	Sleep    Feature
	Tobacco  Feature
	TV       Feature
	Reading  Feature
	Music    Feature
	Social   Feature
	Gambling Feature

	// summed diary minutes for every observed code, aligned with Result.Codes
	Minutes []float64
}

// Leisure returns the derived feature for one of the codes of interest.
func (r *AnalysisRow) Leisure(code survey.ActivityCode) Feature {
	switch code {
	case survey.CodeSleep:
		return r.Sleep
	case survey.CodeTobaccoDrug:
		return r.Tobacco
	case survey.CodeTV:
		return r.TV
	case survey.CodeReading:
		return r.Reading
	case survey.CodeMusic:
		return r.Music
	case survey.CodeSocializing:
		return r.Social
	case survey.CodeGambling:
		return r.Gambling
	}

	return Feature{}
}

// Result is the terminal artifact of the pipeline.
type Result struct {
	Rows  []AnalysisRow
	Codes []survey.ActivityCode

	// rows lost to the join policy and to the earnings cap
	DroppedNoDemog int
	DroppedNoDiary int
	DroppedCap     int
}

// Merge joins the filtered economic rows with the demographic index and the
// wide diary table, derives the scaled features, and applies the earnings
// cap. The economic rows anchor the row set; unmatched respondents follow
// cfg.Join. The cap runs last, on the merged rows -- capping inside the
// respondent filter would drop records before the diary data is attached.
func Merge(cfg Config, econ []survey.Economic, demog map[survey.CaseID]survey.Demographic, wide *Wide) (*Result, error) {
	if e := cfg.Validate(); e != nil {
		return nil, e
	}

	// deterministic row order regardless of input order
	anchor := make([]survey.Economic, len(econ))
	copy(anchor, econ)
	sort.Slice(anchor, func(i, j int) bool { return anchor[i].CaseID < anchor[j].CaseID })

	res := &Result{Codes: wide.Codes()}

	for _, er := range anchor {
		var (
			d    survey.Demographic
			okD  bool
			mins []float64
			okA  bool
		)

		d, okD = demog[er.CaseID]
		mins, okA = wide.Row(er.CaseID)

		if cfg.Join == DropUnmatched {
			if !okD {
				res.DroppedNoDemog++
				continue
			}

			if !okA {
				res.DroppedNoDiary++
				continue
			}
		}

		if !okA {
			mins = make([]float64, len(res.Codes))
			for ind := range mins {
				mins[ind] = math.NaN()
			}
		}

		row := AnalysisRow{
			CaseID: er.CaseID,

			WeeklyEarnings: er.WeeklyEarnings,
			LogEarnings:    math.Log(er.WeeklyEarnings + 1),
			WeeklyHours:    er.WeeklyHours,
			LogWorkHours:   math.Log(er.WeeklyHours + 1),

			Minutes: mins,
		}

		if okD {
			row.State = d.State
			row.Sex = d.Sex
			row.Age = d.Age
			row.Education = d.Education
			row.Race = d.Race
			row.Hispanic = d.Hispanic
			row.BirthCountry = d.BirthCountry
			row.Citizenship = d.Citizenship
			row.Marital = d.Marital
			row.HouseholdSize = d.HouseholdSize
			row.LogHouseholdSize = math.Log(float64(d.HouseholdSize) + 1)
		} else {
			row.LogHouseholdSize = math.NaN()
		}

		row.Sleep = feature(wide, er.CaseID, survey.CodeSleep, cfg.LogOffset, okA)
		row.Tobacco = feature(wide, er.CaseID, survey.CodeTobaccoDrug, cfg.LogOffset, okA)
		row.TV = feature(wide, er.CaseID, survey.CodeTV, cfg.LogOffset, okA)
		row.Reading = feature(wide, er.CaseID, survey.CodeReading, cfg.LogOffset, okA)
		row.Music = feature(wide, er.CaseID, survey.CodeMusic, cfg.LogOffset, okA)
		row.Social = feature(wide, er.CaseID, survey.CodeSocializing, cfg.LogOffset, okA)
		row.Gambling = feature(wide, er.CaseID, survey.CodeGambling, cfg.LogOffset, okA)

		// outlier screen, after derivation, on the merged row
		if er.WeeklyEarnings >= cfg.EarningsCap {
			res.DroppedCap++
			continue
		}

		res.Rows = append(res.Rows, row)
	}

	return res, nil
}

func feature(wide *Wide, id survey.CaseID, code survey.ActivityCode, offset float64, haveDiary bool) Feature {
	if !haveDiary {
		return Feature{Minutes: math.NaN(), Hours: math.NaN(), LogHours: math.NaN()}
	}

	m, _ := wide.Minutes(id, code)

	return Feature{
		Minutes:  m,
		Hours:    m / 60.0,
		LogHours: math.Log(m/60.0 + offset),
	}
}

// Frame materializes the result as a frame with the documented column
// contract: identifiers and response first, controls, demographics, the
// wide diary minutes, then the derived hour scales for the codes of
// interest.
func (res *Result) Frame() (*timeuse.Frame, error) {
	n := len(res.Rows)
	if n == 0 {
		return nil, fmt.Errorf("empty result has no frame")
	}

	caseID := make([]int, n)
	earn := make([]float64, n)
	logEarn := make([]float64, n)
	workHrs := make([]float64, n)
	logWorkHrs := make([]float64, n)
	hhSize := make([]int, n)
	logHHSize := make([]float64, n)
	state := make([]int, n)
	sex := make([]string, n)
	age := make([]int, n)
	educ := make([]string, n)
	race := make([]string, n)
	hispanic := make([]int, n)
	birthCountry := make([]int, n)
	citizen := make([]string, n)
	marital := make([]string, n)

	for ind, r := range res.Rows {
		caseID[ind] = int(r.CaseID)
		earn[ind] = r.WeeklyEarnings
		logEarn[ind] = r.LogEarnings
		workHrs[ind] = r.WeeklyHours
		logWorkHrs[ind] = r.LogWorkHours
		hhSize[ind] = r.HouseholdSize
		logHHSize[ind] = r.LogHouseholdSize
		state[ind] = r.State
		sex[ind] = r.Sex.String()
		age[ind] = r.Age
		educ[ind] = r.Education.String()
		race[ind] = r.Race.String()
		if r.Hispanic {
			hispanic[ind] = 1
		}
		birthCountry[ind] = r.BirthCountry
		citizen[ind] = r.Citizenship.String()
		marital[ind] = r.Marital.String()
	}

	type namedData struct {
		name string
		data any
	}

	named := []namedData{
		{"caseID", caseID},
		{"weeklyEarnings", earn},
		{"logEarn", logEarn},
		{"weeklyHours", workHrs},
		{"logWorkHrs", logWorkHrs},
		{"hhSize", hhSize},
		{"logHHSize", logHHSize},
		{"state", state},
		{"sex", sex},
		{"age", age},
		{"educ", educ},
		{"race", race},
		{"hispanic", hispanic},
		{"birthCountry", birthCountry},
		{"citizen", citizen},
		{"marital", marital},
	}

	for cInd, code := range res.Codes {
		x := make([]float64, n)
		for ind, r := range res.Rows {
			x[ind] = r.Minutes[cInd]
		}

		named = append(named, namedData{code.Column(), x})
	}

	for _, code := range survey.LeisureCodes {
		hrs := make([]float64, n)
		logHrs := make([]float64, n)
		for ind := range res.Rows {
			f := res.Rows[ind].Leisure(code)
			hrs[ind] = f.Hours
			logHrs[ind] = f.LogHours
		}

		named = append(named,
			namedData{code.Label() + "Hrs", hrs},
			namedData{code.Label() + "LogHrs", logHrs})
	}

	var cols []*timeuse.Col
	for _, nd := range named {
		var (
			col *timeuse.Col
			e   error
		)
		if col, e = timeuse.NewCol(nd.name, nd.data); e != nil {
			return nil, e
		}

		cols = append(cols, col)
	}

	return timeuse.NewFrame(cols...)
}
