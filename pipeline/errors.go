package pipeline

import (
	"fmt"

	"github.com/invertedv/timeuse/survey"
)

// The pipeline fails hard rather than silently correcting: a silently
// repaired input would change the analysis table undetectably.

// MissingKeyError reports an eligible respondent with no matching row in
// another extract. Whether it is fatal is a join-policy decision; Merge
// counts these rather than returning them when the policy is DropUnmatched.
type MissingKeyError struct {
	CaseID survey.CaseID
	Table  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("case %d has no %s row", e.CaseID, e.Table)
}

// InvariantError reports input that violates a structural assumption:
// duplicate demographic rows for one case, or negative diary durations.
type InvariantError struct {
	CaseID survey.CaseID
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated for case %d: %s", e.CaseID, e.Reason)
}

// ConfigError reports a run parameter that cannot be used as given.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bad config %s: %s", e.Field, e.Reason)
}
