package gpa

import (
	"strconv"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// MaxCreditHours is the largest credit value accepted for a single course.
const MaxCreditHours = 6

// FormatGPA renders a GPA with two decimals.
func FormatGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// IsValidCreditHours reports whether n is a usable credit value for one
// course: 0 < n <= MaxCreditHours.
func IsValidCreditHours(n domain.Numeric) bool {
	v, ok := n.Positive()
	return ok && v <= MaxCreditHours
}

// IsValidCGPA reports whether n is a present value on the 4.0 scale.
func IsValidCGPA(n domain.Numeric) bool {
	v, ok := n.Float()
	return ok && v >= 0 && v <= domain.MaxGradePoint
}
