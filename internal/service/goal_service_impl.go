package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
	"github.com/alexanderramin/cgpa/internal/repository"
)

type goalService struct {
	states   repository.AcademicStateRepo
	observer UseCaseObserver
}

func NewGoalService(states repository.AcademicStateRepo, observers ...UseCaseObserver) GoalService {
	return &goalService{
		states:   states,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalService) Plan(ctx context.Context, req contract.GoalRequest) (resp *contract.GoalResponse, err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "plan-goal", startedAt, fields, err) }()

	state, err := s.states.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading academic state: %w", err)
	}
	if !state.HasHistory() {
		return nil, &contract.GoalError{
			Code:    contract.GoalErrMissingState,
			Message: "enter your current CGPA and credits earned first",
		}
	}

	target, ok := req.TargetCGPA.Float()
	if !ok || target < 0 || target > domain.MaxGradePoint {
		return nil, &contract.GoalError{
			Code:    contract.GoalErrInvalidTarget,
			Message: "target CGPA must be between 0 and 4",
		}
	}
	planned, ok := req.PlannedCredits.Positive()
	if !ok {
		return nil, &contract.GoalError{
			Code:    contract.GoalErrInvalidCredits,
			Message: "credits must be a number greater than 0",
		}
	}

	current := state.CurrentCGPA.OrZero()
	resp = &contract.GoalResponse{
		TargetCGPA:     target,
		PlannedCredits: planned,
		CurrentCGPA:    current,
		CreditsEarned:  state.CreditsEarned.OrZero(),
		RequiredGPA:    gpa.SolveRequiredGPA(target, *state, planned),
		AcademicGoal:   gpa.AcademicGoal(target),
	}

	switch {
	case target < current || resp.RequiredGPA < 0:
		resp.Outcome = domain.OutcomeAlreadyMet
	case resp.RequiredGPA > domain.MaxGradePoint:
		resp.Outcome = domain.OutcomeUnachievable
		resp.Paths = gpa.ExplorePaths(target, *state, planned)
	default:
		resp.Outcome = domain.OutcomeAchievable
	}

	fields["outcome"] = string(resp.Outcome)
	fields["paths"] = len(resp.Paths)
	return resp, nil
}
