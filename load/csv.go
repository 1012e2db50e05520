// Package load reads the three survey extracts into typed records, from the
// published CSV files or from ClickHouse/Postgres mirrors of them. Numeric
// missing-value markers (the negative codes the survey publishes) become
// NaN here, so downstream code never sees a sentinel.
package load

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/invertedv/timeuse/survey"
)

// variable names in the published extracts
const (
	fldCaseID = "TUCASEID"

	// respondent (economic) file
	fldYear     = "TUYEAR"
	fldFTPT     = "TRDPFTPT"
	fldMultiJob = "TEMJOT"
	fldStudent  = "TESCHENR"
	fldLabor    = "TELFS"
	fldEarnWk   = "TRERNWA"
	fldHours    = "TEHRUSLT"

	// household/demographic file
	fldLineNo  = "TULINENO"
	fldState   = "GESTFIPS"
	fldSex     = "TESEX"
	fldAge     = "TEAGE"
	fldEduc    = "PEEDUCA"
	fldRace    = "PTDTRACE"
	fldHisp    = "PEHSPNON"
	fldNatvty  = "PENATVTY"
	fldCitshp  = "PRCITSHP"
	fldMarital = "PEMARITL"
	fldHHnum   = "HRNUMHOU"

	// activity (diary) file
	fldActCode = "TRCODEP"
	fldActDur  = "TUACTDUR24"
)

// table holds one parsed extract: a name->position header index plus rows.
type table struct {
	pos  map[string]int
	rows [][]string
}

func readTable(fileName string) (*table, error) {
	var (
		file *os.File
		e    error
	)
	if file, e = os.Open(fileName); e != nil {
		return nil, e
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	r.TrimLeadingSpace = true

	var recs [][]string
	if recs, e = r.ReadAll(); e != nil {
		return nil, fmt.Errorf("%s: %w", fileName, e)
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: empty file", fileName)
	}

	t := &table{pos: make(map[string]int), rows: recs[1:]}
	for ind, name := range recs[0] {
		t.pos[name] = ind
	}

	return t, nil
}

func (t *table) intAt(row []string, name string) (int, error) {
	var (
		pos int
		ok  bool
	)
	if pos, ok = t.pos[name]; !ok {
		return 0, fmt.Errorf("missing column %s", name)
	}

	var (
		v int64
		e error
	)
	if v, e = strconv.ParseInt(row[pos], 10, 64); e != nil {
		return 0, fmt.Errorf("column %s: %w", name, e)
	}

	return int(v), nil
}

func (t *table) has(name string) bool {
	_, ok := t.pos[name]
	return ok
}

// Economics reads the respondent file.
func Economics(fileName string) ([]survey.Economic, error) {
	var (
		t *table
		e error
	)
	if t, e = readTable(fileName); e != nil {
		return nil, e
	}

	var out []survey.Economic
	for _, row := range t.rows {
		vals := make(map[string]int)
		for _, name := range []string{fldCaseID, fldYear, fldFTPT, fldMultiJob, fldStudent, fldLabor, fldEarnWk, fldHours} {
			var v int
			if v, e = t.intAt(row, name); e != nil {
				return nil, fmt.Errorf("%s: %w", fileName, e)
			}
			vals[name] = v
		}

		out = append(out, buildEconomic(uint64(vals[fldCaseID]), vals[fldYear], vals[fldFTPT],
			vals[fldMultiJob], vals[fldStudent], vals[fldLabor], vals[fldEarnWk], vals[fldHours]))
	}

	return out, nil
}

// Demographics reads the household file. When the file carries a line
// number (one row per household member), only the respondent's own row
// (line 1) is kept.
func Demographics(fileName string) ([]survey.Demographic, error) {
	var (
		t *table
		e error
	)
	if t, e = readTable(fileName); e != nil {
		return nil, e
	}

	var out []survey.Demographic
	for _, row := range t.rows {
		if t.has(fldLineNo) {
			var line int
			if line, e = t.intAt(row, fldLineNo); e != nil {
				return nil, fmt.Errorf("%s: %w", fileName, e)
			}

			if line != 1 {
				continue
			}
		}

		vals := make(map[string]int)
		for _, name := range []string{fldCaseID, fldState, fldSex, fldAge, fldEduc, fldRace, fldHisp, fldNatvty, fldCitshp, fldMarital, fldHHnum} {
			var v int
			if v, e = t.intAt(row, name); e != nil {
				return nil, fmt.Errorf("%s: %w", fileName, e)
			}
			vals[name] = v
		}

		out = append(out, buildDemographic(uint64(vals[fldCaseID]), vals[fldState], vals[fldSex],
			vals[fldAge], vals[fldEduc], vals[fldRace], vals[fldHisp], vals[fldNatvty],
			vals[fldCitshp], vals[fldMarital], vals[fldHHnum]))
	}

	return out, nil
}

// Activities reads the diary file.
func Activities(fileName string) ([]survey.Activity, error) {
	var (
		t *table
		e error
	)
	if t, e = readTable(fileName); e != nil {
		return nil, e
	}

	var out []survey.Activity
	for _, row := range t.rows {
		vals := make(map[string]int)
		for _, name := range []string{fldCaseID, fldActCode, fldActDur} {
			var v int
			if v, e = t.intAt(row, name); e != nil {
				return nil, fmt.Errorf("%s: %w", fileName, e)
			}
			vals[name] = v
		}

		out = append(out, buildActivity(uint64(vals[fldCaseID]), vals[fldActCode], vals[fldActDur]))
	}

	return out, nil
}

// ***************** shared record builders *****************

// buildEconomic maps the raw survey codes to a typed record. Weekly
// earnings are published in hundredths of dollars; negative values on the
// numeric fields are missing-value markers.
func buildEconomic(id uint64, year, ftpt, mjot, schenr, telfs, ernwa, uhours int) survey.Economic {
	emp, _ := survey.EmploymentFromCode(ftpt)
	labor, _ := survey.LaborFromCode(telfs)

	earn := math.NaN()
	if ernwa >= 0 {
		earn = float64(ernwa) / 100.0
	}

	hrs := math.NaN()
	if uhours >= 0 {
		hrs = float64(uhours)
	}

	return survey.Economic{
		CaseID:         survey.CaseID(id),
		Year:           year,
		Employment:     emp,
		MultipleJobs:   mjot == 1,
		Student:        schenr == 1,
		LaborStatus:    labor,
		WeeklyEarnings: earn,
		WeeklyHours:    hrs,
	}
}

func buildDemographic(id uint64, st, sex, age, educa, race, hisp, natvty, citshp, marital, hhnum int) survey.Demographic {
	sx, _ := survey.SexFromCode(sex)
	ed, _ := survey.EducationFromCode(educa)
	rc, _ := survey.RaceFromCode(race)
	ct, _ := survey.CitizenshipFromCode(citshp)
	ms, _ := survey.MaritalFromCode(marital)

	return survey.Demographic{
		CaseID:        survey.CaseID(id),
		State:         st,
		Sex:           sx,
		Age:           age,
		Education:     ed,
		Race:          rc,
		Hispanic:      hisp == 1,
		BirthCountry:  natvty,
		Citizenship:   ct,
		Marital:       ms,
		HouseholdSize: hhnum,
	}
}

func buildActivity(id uint64, code, dur int) survey.Activity {
	return survey.Activity{
		CaseID:  survey.CaseID(id),
		Code:    survey.ActivityCode(code),
		Minutes: dur,
	}
}
