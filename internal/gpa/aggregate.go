package gpa

import (
	"math"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// Totals is the reduction of one term's course rows.
type Totals struct {
	GradePoints float64
	CreditHours float64
}

// GPA returns GradePoints / CreditHours, or 0 when no credits counted.
func (t Totals) GPA() float64 {
	if t.CreditHours <= 0 {
		return 0
	}
	return t.GradePoints / t.CreditHours
}

// Aggregate sums grade points and credit hours over the complete rows.
// Rows missing a grade or a positive credit value are skipped, which is
// the same as leaving them out of the slice.
func Aggregate(courses []domain.Course) Totals {
	var t Totals
	for _, c := range courses {
		credits, ok := c.Credits()
		if !ok {
			continue
		}
		t.GradePoints += domain.GradePoint(c.Grade) * credits
		t.CreditHours += credits
	}
	return t
}

// SemesterGPA is Aggregate(courses).GPA().
func SemesterGPA(courses []domain.Course) float64 {
	return Aggregate(courses).GPA()
}

// Calculate aggregates the current term and blends it with prior history.
func Calculate(courses []domain.Course, prior domain.AcademicState) domain.CalculationResult {
	totals := Aggregate(courses)
	semesterGPA := totals.GPA()
	if math.IsNaN(semesterGPA) {
		semesterGPA = 0
	}
	return domain.CalculationResult{
		TotalCredits: totals.CreditHours,
		GPA:          semesterGPA,
		CGPA:         BlendCGPA(semesterGPA, totals.CreditHours, prior),
	}
}
