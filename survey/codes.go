package survey

import "fmt"

// ActivityCode is a 6-digit activity lexicon code. Leading zeros are not
// stored (sleeping is 10101), matching how the extracts publish the codes.
type ActivityCode int

// The lexicon codes the analysis derives hour and log-hour features for.
const (
	CodeSleep       ActivityCode = 10101
	CodeSocializing ActivityCode = 120101
	CodeTobaccoDrug ActivityCode = 120302
	CodeTV          ActivityCode = 120303
	CodeMusic       ActivityCode = 120306
	CodeReading     ActivityCode = 120312
	CodeGambling    ActivityCode = 120402
)

// LeisureCodes lists the codes of interest in their fixed feature order.
var LeisureCodes = []ActivityCode{
	CodeSleep,
	CodeTobaccoDrug,
	CodeTV,
	CodeReading,
	CodeMusic,
	CodeSocializing,
	CodeGambling,
}

// Column is the stable column name for a code in the wide activity table:
// "t" plus the code zero-padded to six digits.
func (c ActivityCode) Column() string {
	return fmt.Sprintf("t%06d", int(c))
}

// Label is the short feature name used for the derived hour columns.
func (c ActivityCode) Label() string {
	switch c {
	case CodeSleep:
		return "sleep"
	case CodeTobaccoDrug:
		return "tobacco"
	case CodeTV:
		return "tv"
	case CodeMusic:
		return "music"
	case CodeReading:
		return "reading"
	case CodeSocializing:
		return "social"
	case CodeGambling:
		return "gambling"
	}

	return c.Column()
}
