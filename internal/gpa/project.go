package gpa

import (
	"math"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// goalEpsilon is the tolerance used when comparing a goal with the
// current or maximum CGPA.
const goalEpsilon = 0.001

// Projection is the end state after every planned semester.
type Projection struct {
	ProjectedCGPA   float64
	TotalNewCredits float64
}

// Project seeds the running totals with the prior standing and folds in
// every complete course of every semester. Order does not matter to the
// arithmetic but every course is visited.
func Project(prior domain.AcademicState, semesters []domain.Semester) Projection {
	priorCGPA := prior.CurrentCGPA.OrZero()
	priorCredits := prior.CreditsEarned.OrZero()

	totalPoints := priorCGPA * priorCredits
	totalCredits := priorCredits
	var newCredits float64

	for _, sem := range semesters {
		for _, c := range sem.Courses {
			credits, ok := c.Credits()
			if !ok {
				continue
			}
			totalPoints += credits * domain.GradePoint(c.Grade)
			totalCredits += credits
			newCredits += credits
		}
	}

	projected := priorCGPA
	if totalCredits > 0 {
		projected = totalPoints / totalCredits
	}
	projected = math.Min(projected, domain.MaxGradePoint)
	if math.IsNaN(projected) {
		projected = priorCGPA
	}

	return Projection{ProjectedCGPA: projected, TotalNewCredits: newCredits}
}

// Achievability explains how a projection compares with a goal.
type Achievability struct {
	IsAchievable       bool
	IsGoalBelowCurrent bool
	IsGoalEqualCurrent bool
	IsMaxGoal          bool
	IsExactMatch       bool
}

// JudgeGoal decides whether the projection reaches goal. Values are
// compared at two decimals, matching what the user sees. A 4.0 goal
// needs the projection within goalEpsilon of 4.0 since the cap means it
// can never be strictly greater.
func JudgeGoal(goal float64, prior domain.AcademicState, p Projection) Achievability {
	current := prior.CurrentCGPA.OrZero()

	var a Achievability
	a.IsMaxGoal = math.Abs(goal-domain.MaxGradePoint) < goalEpsilon
	a.IsGoalEqualCurrent = math.Abs(goal-current) < goalEpsilon
	a.IsGoalBelowCurrent = goal < current && !a.IsGoalEqualCurrent
	a.IsExactMatch = Round2(p.ProjectedCGPA) == Round2(goal)

	var exceeds bool
	if a.IsMaxGoal {
		exceeds = math.Abs(p.ProjectedCGPA-domain.MaxGradePoint) < goalEpsilon
	} else {
		exceeds = p.ProjectedCGPA > goal
	}

	a.IsAchievable = a.IsGoalEqualCurrent || a.IsGoalBelowCurrent || a.IsExactMatch || exceeds
	return a
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
