package gpa

import (
	"math"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// BlendCGPA folds a term into the prior standing.
//
// The ladder, in order:
//   - term credits and a valid prior: credit-weighted average of both
//   - term credits only: the term GPA (first semester)
//   - no term credits, positive prior CGPA: the prior CGPA unchanged
//   - otherwise 0
//
// The result is clamped to 4.0 and never NaN.
func BlendCGPA(semesterGPA, semesterCredits float64, prior domain.AcademicState) float64 {
	var cgpa float64

	priorCGPA, priorCredits, hasPrior := prior.Prior()
	switch {
	case semesterCredits > 0 && hasPrior:
		cgpa = (priorCGPA*priorCredits + semesterGPA*semesterCredits) / (priorCredits + semesterCredits)
	case semesterCredits > 0:
		cgpa = semesterGPA
	default:
		if v, ok := prior.CurrentCGPA.Positive(); ok {
			cgpa = v
		}
	}

	if math.IsNaN(cgpa) {
		return 0
	}
	return math.Min(cgpa, domain.MaxGradePoint)
}
