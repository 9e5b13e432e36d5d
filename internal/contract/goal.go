package contract

import "github.com/alexanderramin/cgpa/internal/domain"

// GoalRequest asks what semester GPA reaches TargetCGPA over
// PlannedCredits. Both fields are raw form text.
type GoalRequest struct {
	TargetCGPA     domain.Numeric
	PlannedCredits domain.Numeric
}

func NewGoalRequest(target, credits string) GoalRequest {
	return GoalRequest{
		TargetCGPA:     domain.Numeric(target),
		PlannedCredits: domain.Numeric(credits),
	}
}

type GoalResponse struct {
	TargetCGPA     float64
	PlannedCredits float64
	CurrentCGPA    float64
	CreditsEarned  float64
	RequiredGPA    float64
	Outcome        domain.GoalOutcome
	// AcademicGoal names the honors tier of the target, or "".
	AcademicGoal string
	// Paths is only populated when Outcome is unachievable.
	Paths []domain.AlternativePath
}
