package domain

import "time"

// Semester is a hypothetical future term in a what-if scenario.
type Semester struct {
	ID        string
	Seq       int
	Name      string
	IsOpen    bool
	Courses   []SemesterCourse
	CreatedAt time.Time
}

// SemesterCourse is a what-if course row. It has no code.
type SemesterCourse struct {
	ID          string
	SemesterID  string
	Seq         int
	CreditHours Numeric
	Grade       GradeSymbol
}

// Credits mirrors Course.Credits.
func (c SemesterCourse) Credits() (float64, bool) {
	if c.Grade == "" {
		return 0, false
	}
	return c.CreditHours.Positive()
}

// Settings holds per-workspace preferences.
type Settings struct {
	ID          string
	DefaultRows int
}
