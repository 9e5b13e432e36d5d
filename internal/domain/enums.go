package domain

// GoalOutcome classifies a required-GPA result for display.
type GoalOutcome string

const (
	OutcomeAchievable   GoalOutcome = "achievable"
	OutcomeUnachievable GoalOutcome = "unachievable"
	OutcomeAlreadyMet   GoalOutcome = "already_met"
)

// Standing is an academic standing band based on a GPA.
type Standing string

const (
	StandingPresidentsList Standing = "President's List"
	StandingDeansList      Standing = "Dean's List"
	StandingGood           Standing = "Good Standing"
	StandingNotGood        Standing = "Not Good Standing - See Your Academic Advisor"
	StandingUnknown        Standing = "Unknown"
)

// Preset fills every what-if course with a grade pattern.
type Preset string

const (
	PresetAllAs    Preset = "allAs"
	PresetAllBs    Preset = "allBs"
	PresetBAverage Preset = "bAverage"
	PresetCAverage Preset = "cAverage"
)

// ValidPresets is the canonical set of accepted preset names.
var ValidPresets = map[string]bool{
	"allAs": true, "allBs": true, "bAverage": true, "cAverage": true,
}

// DefaultRows is the number of blank course rows a fresh table starts with.
const DefaultRows = 3

// MaxDefaultRows bounds the configurable row count.
const MaxDefaultRows = 50
