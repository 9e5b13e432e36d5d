package gpa

import "github.com/alexanderramin/cgpa/internal/domain"

// StandingFor maps a GPA to its academic standing band.
func StandingFor(gpa float64) domain.Standing {
	switch {
	case gpa >= 3.8 && gpa <= 4.0:
		return domain.StandingPresidentsList
	case gpa >= 3.5 && gpa < 3.8:
		return domain.StandingDeansList
	case gpa >= 2.0 && gpa < 3.5:
		return domain.StandingGood
	case gpa >= 0.0 && gpa < 2.0:
		return domain.StandingNotGood
	default:
		return domain.StandingUnknown
	}
}

// AcademicGoal names the honors tier a target CGPA aims for, or "" when
// the target is below good standing.
func AcademicGoal(target float64) string {
	switch {
	case target >= 3.9:
		return "Summa Cum Laude"
	case target >= 3.7:
		return "Magna Cum Laude"
	case target >= 3.5:
		return "Cum Laude"
	case target >= 3.0:
		return "Good Standing"
	default:
		return ""
	}
}

// Honor is one row of the honors guide.
type Honor struct {
	Name string
	Min  float64
	// Max is 0 for open-ended ranges such as "3.8+".
	Max float64
}

// HonorsGuide lists the common honors thresholds on the 4.0 scale.
var HonorsGuide = []Honor{
	{Name: "Summa Cum Laude", Min: 3.9, Max: 4.0},
	{Name: "Magna Cum Laude", Min: 3.8, Max: 3.89},
	{Name: "Cum Laude", Min: 3.7, Max: 3.79},
	{Name: "University Honors", Min: 3.5, Max: 3.69},
	{Name: "President's List", Min: 3.8},
	{Name: "Dean's List", Min: 3.5},
}

// Qualifies reports whether cgpa falls in the honor's range.
func (h Honor) Qualifies(cgpa float64) bool {
	if cgpa < h.Min {
		return false
	}
	return h.Max == 0 || cgpa <= h.Max
}
