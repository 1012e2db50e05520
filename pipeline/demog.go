package pipeline

import "github.com/invertedv/timeuse/survey"

// SelectDemographics indexes the demographic rows by case id. No rows are
// filtered -- eligibility is the respondent filter's job. A duplicate case
// id is an InvariantError: there is exactly one demographic row per
// respondent, and silently keeping either copy would corrupt the join.
func SelectDemographics(rows []survey.Demographic) (map[survey.CaseID]survey.Demographic, error) {
	out := make(map[survey.CaseID]survey.Demographic, len(rows))

	for _, r := range rows {
		if _, dup := out[r.CaseID]; dup {
			return nil, &InvariantError{CaseID: r.CaseID, Reason: "duplicate demographic row"}
		}

		out[r.CaseID] = r
	}

	return out, nil
}
