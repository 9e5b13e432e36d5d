package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
	"github.com/alexanderramin/cgpa/internal/repository"
	"github.com/google/uuid"
)

type whatIfService struct {
	semesters repository.SemesterRepo
	states    repository.AcademicStateRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver

	mu  sync.Mutex
	rng *rand.Rand
}

// NewWhatIfService builds the scenario planner. rng drives the band
// presets; nil picks the middle grade of each band.
func NewWhatIfService(
	semesters repository.SemesterRepo,
	states repository.AcademicStateRepo,
	uow db.UnitOfWork,
	rng *rand.Rand,
	observers ...UseCaseObserver,
) WhatIfService {
	return &whatIfService{
		semesters: semesters,
		states:    states,
		uow:       uow,
		rng:       rng,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *whatIfService) ListSemesters(ctx context.Context) ([]*domain.Semester, error) {
	return s.semesters.List(ctx)
}

func (s *whatIfService) AddSemester(ctx context.Context, name string) (sem *domain.Semester, err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "add-semester", startedAt, fields, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		existing, err := s.semesters.List(ctx)
		if err != nil {
			return nil, err
		}
		name = fmt.Sprintf("Semester %d", len(existing)+1)
	}

	sem = &domain.Semester{
		ID:        uuid.New().String(),
		Name:      name,
		IsOpen:    true,
		CreatedAt: nowUTC(),
	}
	if err = s.semesters.Create(ctx, sem); err != nil {
		return nil, err
	}
	fields["seq"] = sem.Seq
	return sem, nil
}

func (s *whatIfService) RemoveSemester(ctx context.Context, id string) (err error) {
	startedAt := nowUTC()
	defer func() { observe(ctx, s.observer, "remove-semester", startedAt, map[string]any{"semester_id": id}, err) }()
	return s.semesters.Delete(ctx, id)
}

// ToggleSemester flips whether the semester is expanded in listings. The
// projection always counts it.
func (s *whatIfService) ToggleSemester(ctx context.Context, id string) (sem *domain.Semester, err error) {
	startedAt := nowUTC()
	fields := map[string]any{"semester_id": id}
	defer func() { observe(ctx, s.observer, "toggle-semester", startedAt, fields, err) }()

	sem, err = s.semesters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sem.IsOpen = !sem.IsOpen
	if err = s.semesters.Update(ctx, sem); err != nil {
		return nil, err
	}
	fields["is_open"] = sem.IsOpen
	return sem, nil
}

func (s *whatIfService) AddCourse(ctx context.Context, semesterID string, in contract.SemesterCourseInput) (course *domain.SemesterCourse, err error) {
	startedAt := nowUTC()
	fields := map[string]any{"semester_id": semesterID}
	defer func() { observe(ctx, s.observer, "add-whatif-course", startedAt, fields, err) }()

	if _, err = s.semesters.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}
	course = &domain.SemesterCourse{ID: uuid.New().String(), SemesterID: semesterID}
	if err = applySemesterCourseInput(course, in); err != nil {
		return nil, err
	}
	if err = s.semesters.AddCourse(ctx, course); err != nil {
		return nil, err
	}
	fields["seq"] = course.Seq
	return course, nil
}

func (s *whatIfService) UpdateCourse(ctx context.Context, courseID string, in contract.SemesterCourseInput) (err error) {
	startedAt := nowUTC()
	defer func() { observe(ctx, s.observer, "update-whatif-course", startedAt, map[string]any{"course_id": courseID}, err) }()

	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if err = applySemesterCourseInput(course, in); err != nil {
		return err
	}
	return s.semesters.UpdateCourse(ctx, course)
}

func (s *whatIfService) findCourse(ctx context.Context, courseID string) (*domain.SemesterCourse, error) {
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, sem := range semesters {
		for i := range sem.Courses {
			if sem.Courses[i].ID == courseID {
				return &sem.Courses[i], nil
			}
		}
	}
	return nil, fmt.Errorf("semester course: %w", repository.ErrNotFound)
}

func applySemesterCourseInput(c *domain.SemesterCourse, in contract.SemesterCourseInput) error {
	if in.CreditHours != nil {
		n, err := parseCreditInput(*in.CreditHours)
		if err != nil {
			return err
		}
		c.CreditHours = n
	}
	if in.Grade != nil {
		g, err := parseGradeInput(*in.Grade)
		if err != nil {
			return err
		}
		c.Grade = g
	}
	return nil
}

func (s *whatIfService) RemoveCourse(ctx context.Context, courseID string) (err error) {
	startedAt := nowUTC()
	defer func() { observe(ctx, s.observer, "remove-whatif-course", startedAt, map[string]any{"course_id": courseID}, err) }()
	return s.semesters.DeleteCourse(ctx, courseID)
}

// ApplyPreset regrades every course of every semester, open or not, in
// one transaction.
func (s *whatIfService) ApplyPreset(ctx context.Context, req contract.PresetRequest) (changed int, err error) {
	startedAt := nowUTC()
	preset := req.Preset
	fields := map[string]any{"preset": string(preset)}
	defer func() { observe(ctx, s.observer, "apply-preset", startedAt, fields, err) }()

	if !domain.ValidPresets[string(preset)] {
		return 0, &contract.InputError{Field: "preset", Value: string(preset), Message: "unknown preset"}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSemesters := repository.NewSQLiteSemesterRepo(tx)
		list, err := txSemesters.List(ctx)
		if err != nil {
			return err
		}

		var graded []domain.Semester
		if req.Seed != 0 {
			fields["seed"] = req.Seed
			graded = gpa.ApplyPreset(toValues(list), preset, rand.New(rand.NewSource(req.Seed)))
		} else {
			s.mu.Lock()
			graded = gpa.ApplyPreset(toValues(list), preset, s.rng)
			s.mu.Unlock()
		}

		for i, sem := range graded {
			for j, c := range sem.Courses {
				if c.Grade == list[i].Courses[j].Grade {
					continue
				}
				if err := txSemesters.UpdateCourse(ctx, &c); err != nil {
					return fmt.Errorf("regrading %s row %d: %w", sem.Name, c.Seq, err)
				}
				changed++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	fields["changed"] = changed
	return changed, nil
}

// Project folds every planned semester into the prior standing, open or
// collapsed.
func (s *whatIfService) Project(ctx context.Context, req contract.WhatIfRequest) (resp *contract.WhatIfResponse, err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "project-whatif", startedAt, fields, err) }()

	resp = &contract.WhatIfResponse{}
	if !req.Goal.IsBlank() {
		goal, ok := req.Goal.Float()
		if !ok || goal < 0 || goal > domain.MaxGradePoint {
			return nil, &contract.GoalError{
				Code:    contract.GoalErrInvalidTarget,
				Message: "goal CGPA must be between 0 and 4",
			}
		}
		resp.HasGoal = true
		resp.Goal = goal
	}

	state, err := s.states.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading academic state: %w", err)
	}
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, err
	}

	resp.Semesters = semesters
	resp.CurrentCGPA = state.CurrentCGPA.OrZero()
	resp.CreditsEarned = state.CreditsEarned.OrZero()
	resp.Projection = gpa.Project(*state, toValues(semesters))
	if resp.HasGoal {
		resp.Achievability = gpa.JudgeGoal(resp.Goal, *state, resp.Projection)
		fields["achievable"] = resp.Achievability.IsAchievable
	}

	fields["semesters"] = len(semesters)
	fields["new_credits"] = resp.Projection.TotalNewCredits
	return resp, nil
}
