// Package pipeline turns the three survey extracts into the analysis table:
// filter eligible respondents, index demographics, pivot the diary wide,
// then merge and derive the regression features. Every stage consumes
// immutable inputs and produces a new value; nothing is mutated in place.
package pipeline

import "github.com/invertedv/timeuse/survey"

// JoinPolicy decides what happens to an eligible respondent with no
// demographic or diary match. In the published extracts every respondent has
// both, so the choice is never exercised in practice; it is explicit so a
// defective input can't silently change the row set.
type JoinPolicy uint8

const (
	// DropUnmatched drops the respondent and counts the drop on Result.
	DropUnmatched JoinPolicy = iota
	// NullFill keeps the respondent with NaN-filled derived fields.
	NullFill
)

// Default run parameters. The earnings cap is the top-code for weekly
// earnings in the source files: the pile-up at the top code is what the
// outlier screen removes. The log offset is one minute, in hours.
const (
	DefaultEarningsCap = 2884.61
	DefaultLogOffset   = 1.0 / 60.0
)

// Config are the run parameters. Year and EarningsCap are analysis choices
// and are always explicit, never baked into the stages.
type Config struct {
	Year        int
	EarningsCap float64
	LogOffset   float64
	Join        JoinPolicy
}

func DefaultConfig(year int) Config {
	return Config{
		Year:        year,
		EarningsCap: DefaultEarningsCap,
		LogOffset:   DefaultLogOffset,
		Join:        DropUnmatched,
	}
}

func (cfg Config) Validate() error {
	if cfg.Year <= 0 {
		return &ConfigError{Field: "Year", Reason: "must be positive"}
	}

	if cfg.EarningsCap <= 0 {
		return &ConfigError{Field: "EarningsCap", Reason: "must be positive"}
	}

	if cfg.LogOffset <= 0 {
		return &ConfigError{Field: "LogOffset", Reason: "must be positive"}
	}

	return nil
}

// Run executes the four stages over the loaded extracts. A target year
// absent from the data produces an empty Result, not an error.
func Run(cfg Config, econ []survey.Economic, demog []survey.Demographic, acts []survey.Activity) (*Result, error) {
	if e := cfg.Validate(); e != nil {
		return nil, e
	}

	eligible := FilterRespondents(econ, cfg.Year)

	var (
		byCase map[survey.CaseID]survey.Demographic
		e      error
	)
	if byCase, e = SelectDemographics(demog); e != nil {
		return nil, e
	}

	var wide *Wide
	if wide, e = AggregateActivities(acts); e != nil {
		return nil, e
	}

	return Merge(cfg, eligible, byCase, wide)
}
