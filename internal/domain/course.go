package domain

import "time"

// Course is one row of the current-term table. Fields are mutated one at
// a time by the caller; the engine only ever reads a snapshot.
type Course struct {
	ID          string
	Seq         int
	Code        string
	CreditHours Numeric
	Grade       GradeSymbol
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Credits returns the parsed credit hours and whether the row counts
// toward any calculation.
func (c Course) Credits() (float64, bool) {
	if c.Grade == "" {
		return 0, false
	}
	return c.CreditHours.Positive()
}

// IsComplete reports whether both credit hours and grade are usable.
func (c Course) IsComplete() bool {
	_, ok := c.Credits()
	return ok
}

// IsEmpty reports whether the row has no data at all.
func (c Course) IsEmpty() bool {
	return c.Code == "" && c.CreditHours.IsBlank() && c.Grade == ""
}

// AcademicState is the standing accumulated before the term(s) being
// calculated. Both fields blank means a first-semester student.
type AcademicState struct {
	CurrentCGPA   Numeric
	CreditsEarned Numeric
	UpdatedAt     *time.Time
}

// Prior returns the prior CGPA and credits when both are present and
// strictly positive. This is the only condition under which blending
// applies.
func (s AcademicState) Prior() (cgpa, credits float64, ok bool) {
	cgpa, okCGPA := s.CurrentCGPA.Positive()
	credits, okCredits := s.CreditsEarned.Positive()
	if !okCGPA || !okCredits {
		return 0, 0, false
	}
	return cgpa, credits, true
}

// HasHistory reports whether both fields parse, regardless of sign.
func (s AcademicState) HasHistory() bool {
	_, okCGPA := s.CurrentCGPA.Float()
	_, okCredits := s.CreditsEarned.Float()
	return okCGPA && okCredits
}

// CalculationResult is recomputed from scratch on every call.
type CalculationResult struct {
	TotalCredits float64
	GPA          float64
	CGPA         float64
}

// AlternativePath is one "take more credits, need a lower average"
// trade-off produced by the path explorer.
type AlternativePath struct {
	CreditsNeeded     float64
	RequiredGPA       float64
	IsAchievable      bool
	SemestersEstimate int
}
