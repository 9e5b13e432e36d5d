package gpa

import (
	"math"
	"testing"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBlendCGPA_WeightedAverage(t *testing.T) {
	got := BlendCGPA(3.42, 10, domain.AcademicState{CurrentCGPA: "3.5", CreditsEarned: "30"})
	assert.InDelta(t, 3.48, got, 1e-9)
}

func TestBlendCGPA_FirstSemester(t *testing.T) {
	assert.Equal(t, 3.42, BlendCGPA(3.42, 10, domain.AcademicState{}))
}

func TestBlendCGPA_InvalidPriorFallsBackToTerm(t *testing.T) {
	cases := []domain.AcademicState{
		{CurrentCGPA: "abc", CreditsEarned: "30"},
		{CurrentCGPA: "3.5", CreditsEarned: ""},
		{CurrentCGPA: "0", CreditsEarned: "30"},
		{CurrentCGPA: "3.5", CreditsEarned: "0"},
	}
	for _, prior := range cases {
		assert.Equal(t, 3.1, BlendCGPA(3.1, 12, prior), "prior=%+v", prior)
	}
}

func TestBlendCGPA_NoNewCoursesCarriesForward(t *testing.T) {
	assert.Equal(t, 3.5, BlendCGPA(0, 0, domain.AcademicState{CurrentCGPA: "3.5", CreditsEarned: "30"}))
	// Credits are not required for the carry-forward.
	assert.Equal(t, 3.5, BlendCGPA(0, 0, domain.AcademicState{CurrentCGPA: "3.5"}))
}

func TestBlendCGPA_NothingAtAll(t *testing.T) {
	assert.Equal(t, 0.0, BlendCGPA(0, 0, domain.AcademicState{}))
	assert.Equal(t, 0.0, BlendCGPA(0, 0, domain.AcademicState{CurrentCGPA: "garbage"}))
}

func TestBlendCGPA_ClampedAtFour(t *testing.T) {
	allAs := []domain.Course{course("3", domain.GradeA), course("4", domain.GradeA)}
	res := Calculate(allAs, domain.AcademicState{CurrentCGPA: "4.0", CreditsEarned: "60"})
	assert.Equal(t, 4.0, res.CGPA)

	// An out-of-range prior typed by hand still cannot push the result past the cap.
	assert.Equal(t, 4.0, BlendCGPA(4.0, 3, domain.AcademicState{CurrentCGPA: "4.6", CreditsEarned: "30"}))
	assert.Equal(t, 4.0, BlendCGPA(0, 0, domain.AcademicState{CurrentCGPA: "4.6"}))
}

func TestBlendCGPA_NeverNaN(t *testing.T) {
	got := BlendCGPA(math.NaN(), 3, domain.AcademicState{})
	assert.Equal(t, 0.0, got)
}

func TestBlendCGPA_NeverExceedsMax(t *testing.T) {
	grades := domain.GradeSymbols
	for i, g := range grades {
		courses := []domain.Course{course("3", g), course("4", grades[(i+3)%len(grades)])}
		for _, prior := range []domain.AcademicState{
			{},
			{CurrentCGPA: "4.0", CreditsEarned: "90"},
			{CurrentCGPA: "1.2", CreditsEarned: "15"},
		} {
			res := Calculate(courses, prior)
			assert.LessOrEqual(t, res.CGPA, 4.0)
			assert.GreaterOrEqual(t, res.CGPA, 0.0)
			assert.LessOrEqual(t, res.GPA, 4.0)
		}
	}
}
