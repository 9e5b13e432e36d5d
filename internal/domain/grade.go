package domain

// GradeSymbol is a letter grade as entered on a course row.
type GradeSymbol string

const (
	GradeA      GradeSymbol = "A"
	GradeAMinus GradeSymbol = "A-"
	GradeBPlus  GradeSymbol = "B+"
	GradeB      GradeSymbol = "B"
	GradeBMinus GradeSymbol = "B-"
	GradeCPlus  GradeSymbol = "C+"
	GradeC      GradeSymbol = "C"
	GradeCMinus GradeSymbol = "C-"
	GradeD      GradeSymbol = "D"
	GradeF      GradeSymbol = "F"
	GradeW      GradeSymbol = "W"
	GradeWP     GradeSymbol = "WP"
	GradeWF     GradeSymbol = "WF"
)

// MaxGradePoint is the top of the 4.0 scale.
const MaxGradePoint = 4.0

// gradePoints is the single source of truth for symbol values.
var gradePoints = map[GradeSymbol]float64{
	GradeA:      4.0,
	GradeAMinus: 3.7,
	GradeBPlus:  3.3,
	GradeB:      3.0,
	GradeBMinus: 2.7,
	GradeCPlus:  2.3,
	GradeC:      2.0,
	GradeCMinus: 1.7,
	GradeD:      1.0,
	GradeF:      0.0,
	GradeW:      0.0,
	GradeWP:     0.0,
	GradeWF:     0.0,
}

// GradeSymbols lists the closed set in display order.
var GradeSymbols = []GradeSymbol{
	GradeA, GradeAMinus, GradeBPlus, GradeB, GradeBMinus,
	GradeCPlus, GradeC, GradeCMinus, GradeD,
	GradeF, GradeW, GradeWP, GradeWF,
}

// GradePoint returns the grade-point value of sym. Symbols outside the
// closed set, including the empty symbol, are worth 0.
func GradePoint(sym GradeSymbol) float64 {
	return gradePoints[sym]
}

// IsValid reports whether g belongs to the closed set.
func (g GradeSymbol) IsValid() bool {
	_, ok := gradePoints[g]
	return ok
}

// ParseGradeSymbol validates a user-entered grade. Matching is exact
// after trimming surrounding spaces; "a" is not "A".
func ParseGradeSymbol(s string) (GradeSymbol, bool) {
	g := GradeSymbol(trimSpace(s))
	return g, g.IsValid()
}
