package pipeline

import (
	"sort"

	"github.com/invertedv/timeuse/survey"
)

// Wide is the diary file pivoted to one row per respondent and one column
// per activity code observed anywhere in the input. A (case, code) cell a
// respondent never reported is 0, not missing: no diary entry means no time
// spent, and the downstream log and hour transforms rely on that.
type Wide struct {
	caseIDs []survey.CaseID
	codes   []survey.ActivityCode

	rowPos  map[survey.CaseID]int
	codePos map[survey.ActivityCode]int

	minutes [][]float64
}

// AggregateActivities sums diary minutes within (case, code) -- the same
// code can recur in a diary day -- and pivots the result wide. Row order is
// by case id and column order by code, so reruns on the same input produce
// the same table. A negative duration is an InvariantError.
func AggregateActivities(acts []survey.Activity) (*Wide, error) {
	sums := make(map[survey.CaseID]map[survey.ActivityCode]int)
	codeSet := make(map[survey.ActivityCode]bool)

	for _, a := range acts {
		if a.Minutes < 0 {
			return nil, &InvariantError{CaseID: a.CaseID, Reason: "negative diary duration"}
		}

		if _, ok := sums[a.CaseID]; !ok {
			sums[a.CaseID] = make(map[survey.ActivityCode]int)
		}

		sums[a.CaseID][a.Code] += a.Minutes
		codeSet[a.Code] = true
	}

	w := &Wide{
		rowPos:  make(map[survey.CaseID]int, len(sums)),
		codePos: make(map[survey.ActivityCode]int, len(codeSet)),
	}

	for id := range sums {
		w.caseIDs = append(w.caseIDs, id)
	}
	sort.Slice(w.caseIDs, func(i, j int) bool { return w.caseIDs[i] < w.caseIDs[j] })

	for code := range codeSet {
		w.codes = append(w.codes, code)
	}
	sort.Slice(w.codes, func(i, j int) bool { return w.codes[i] < w.codes[j] })

	for ind, id := range w.caseIDs {
		w.rowPos[id] = ind
	}
	for ind, code := range w.codes {
		w.codePos[code] = ind
	}

	for _, id := range w.caseIDs {
		row := make([]float64, len(w.codes))
		for code, m := range sums[id] {
			row[w.codePos[code]] = float64(m)
		}

		w.minutes = append(w.minutes, row)
	}

	return w, nil
}

func (w *Wide) RowCount() int {
	return len(w.caseIDs)
}

func (w *Wide) CaseIDs() []survey.CaseID {
	return w.caseIDs
}

func (w *Wide) Codes() []survey.ActivityCode {
	return w.codes
}

// ColumnNames returns the deterministic wide column names, in column order.
func (w *Wide) ColumnNames() []string {
	var names []string
	for _, code := range w.codes {
		names = append(names, code.Column())
	}

	return names
}

// Row returns a copy of the minutes row for id, aligned with Codes.
func (w *Wide) Row(id survey.CaseID) ([]float64, bool) {
	var (
		pos int
		ok  bool
	)
	if pos, ok = w.rowPos[id]; !ok {
		return nil, false
	}

	row := make([]float64, len(w.codes))
	copy(row, w.minutes[pos])

	return row, true
}

// Minutes returns the summed minutes for (id, code). A code the respondent
// never reported is 0; the bool is false only when id has no diary data at
// all.
func (w *Wide) Minutes(id survey.CaseID, code survey.ActivityCode) (float64, bool) {
	var (
		pos int
		ok  bool
	)
	if pos, ok = w.rowPos[id]; !ok {
		return 0, false
	}

	var cPos int
	if cPos, ok = w.codePos[code]; !ok {
		return 0, true
	}

	return w.minutes[pos][cPos], true
}
