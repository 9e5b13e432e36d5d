package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
	"github.com/alexanderramin/cgpa/internal/repository"
	"github.com/google/uuid"
)

type calculatorService struct {
	courses  repository.CourseRepo
	states   repository.AcademicStateRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	// fallbackRows seeds a reset when the settings row is missing.
	fallbackRows int
	observer     UseCaseObserver
}

func NewCalculatorService(
	courses repository.CourseRepo,
	states repository.AcademicStateRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	fallbackRows int,
	observers ...UseCaseObserver,
) CalculatorService {
	if fallbackRows < 1 || fallbackRows > domain.MaxDefaultRows {
		fallbackRows = domain.DefaultRows
	}
	return &calculatorService{
		courses:      courses,
		states:       states,
		settings:     settings,
		uow:          uow,
		fallbackRows: fallbackRows,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *calculatorService) State(ctx context.Context) (*domain.AcademicState, error) {
	return s.states.Get(ctx)
}

func (s *calculatorService) SetState(ctx context.Context, in contract.StateInput) (state *domain.AcademicState, err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "set-state", startedAt, fields, err) }()

	state, err = parseStateInput(in)
	if err != nil {
		return nil, err
	}
	if err = s.states.Upsert(ctx, state); err != nil {
		return nil, err
	}
	fields["has_history"] = state.HasHistory()
	return state, nil
}

func parseStateInput(in contract.StateInput) (*domain.AcademicState, error) {
	cgpa := domain.Numeric(strings.TrimSpace(in.CurrentCGPA))
	if !cgpa.IsBlank() && !gpa.IsValidCGPA(cgpa) {
		return nil, &contract.InputError{Field: "cgpa", Value: in.CurrentCGPA, Message: "must be between 0 and 4"}
	}
	credits := domain.Numeric(strings.TrimSpace(in.CreditsEarned))
	if !credits.IsBlank() {
		if v, ok := credits.Float(); !ok || v < 0 {
			return nil, &contract.InputError{Field: "credits", Value: in.CreditsEarned, Message: "must be a non-negative number"}
		}
	}
	now := nowUTC()
	return &domain.AcademicState{CurrentCGPA: cgpa, CreditsEarned: credits, UpdatedAt: &now}, nil
}

func (s *calculatorService) AddCourse(ctx context.Context, in contract.CourseInput) (course *domain.Course, err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "add-course", startedAt, fields, err) }()

	now := nowUTC()
	course = &domain.Course{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err = applyCourseInput(course, in); err != nil {
		return nil, err
	}
	if err = s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	fields["seq"] = course.Seq
	fields["complete"] = course.IsComplete()
	return course, nil
}

func (s *calculatorService) UpdateCourse(ctx context.Context, id string, in contract.CourseInput) (course *domain.Course, err error) {
	startedAt := nowUTC()
	fields := map[string]any{"course_id": id}
	defer func() { observe(ctx, s.observer, "update-course", startedAt, fields, err) }()

	course, err = s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = applyCourseInput(course, in); err != nil {
		return nil, err
	}
	course.UpdatedAt = nowUTC()
	if err = s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	fields["complete"] = course.IsComplete()
	return course, nil
}

func applyCourseInput(c *domain.Course, in contract.CourseInput) error {
	if in.Code != nil {
		c.Code = strings.TrimSpace(*in.Code)
	}
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

func (s *calculatorService) DeleteCourse(ctx context.Context, id string) (err error) {
	startedAt := nowUTC()
	defer func() { observe(ctx, s.observer, "delete-course", startedAt, map[string]any{"course_id": id}, err) }()
	return s.courses.Delete(ctx, id)
}

func (s *calculatorService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *calculatorService) Calculate(ctx context.Context) (resp *contract.CalculationResponse, err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "calculate", startedAt, fields, err) }()

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	state, err := s.states.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading academic state: %w", err)
	}

	result := gpa.Calculate(toValues(courses), *state)
	complete := 0
	for _, c := range courses {
		if c.IsComplete() {
			complete++
		}
	}
	_, _, hasPrior := state.Prior()

	fields["courses"] = len(courses)
	fields["complete_courses"] = complete
	fields["has_prior"] = hasPrior

	return &contract.CalculationResponse{
		Result:          result,
		Courses:         courses,
		State:           *state,
		HasPrior:        hasPrior,
		CompleteCourses: complete,
		Standing:        gpa.StandingFor(result.GPA),
		LastUpdated:     lastUpdated(state, courses),
	}, nil
}

// SaveTable writes an edited table. Nothing is written unless every row
// passes validation, and the writes share one transaction, so a failed
// save can be retried with the same input. Removed rows that are already
// gone are skipped.
func (s *calculatorService) SaveTable(ctx context.Context, in contract.TableInput) (err error) {
	startedAt := nowUTC()
	fields := map[string]any{"rows": len(in.Rows), "removed": len(in.Removed)}
	defer func() { observe(ctx, s.observer, "save-table", startedAt, fields, err) }()

	state, err := parseStateInput(in.State)
	if err != nil {
		return err
	}
	for i, row := range in.Rows {
		if err := applyCourseInput(&domain.Course{}, row.CourseInput); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	created := 0
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txStates := repository.NewSQLiteAcademicStateRepo(tx)

		if err := txStates.Upsert(ctx, state); err != nil {
			return err
		}
		for _, id := range in.Removed {
			if err := txCourses.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}

		now := nowUTC()
		for i, row := range in.Rows {
			if row.ID == "" {
				c := &domain.Course{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
				if err := applyCourseInput(c, row.CourseInput); err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
				if err := txCourses.Create(ctx, c); err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
				created++
				continue
			}

			c, err := txCourses.GetByID(ctx, row.ID)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			if err := applyCourseInput(c, row.CourseInput); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			c.UpdatedAt = now
			if err := txCourses.Update(ctx, c); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fields["created"] = created
	return nil
}

// lastUpdated is the newest write across the state and the course rows.
func lastUpdated(state *domain.AcademicState, courses []*domain.Course) *time.Time {
	var latest *time.Time
	if state.UpdatedAt != nil {
		t := *state.UpdatedAt
		latest = &t
	}
	for _, c := range courses {
		if latest == nil || c.UpdatedAt.After(*latest) {
			t := c.UpdatedAt
			latest = &t
		}
	}
	return latest
}

// Reset clears the table and the prior standing, then seeds the
// configured number of blank rows, all in one transaction.
func (s *calculatorService) Reset(ctx context.Context) (err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "reset", startedAt, fields, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txStates := repository.NewSQLiteAcademicStateRepo(tx)
		txSettings := repository.NewSQLiteSettingsRepo(tx)

		rows := s.fallbackRows
		settings, err := txSettings.Get(ctx)
		switch {
		case err == nil:
			rows = settings.DefaultRows
		case !errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("loading settings: %w", err)
		}
		fields["rows"] = rows

		if err := txCourses.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txStates.Upsert(ctx, &domain.AcademicState{}); err != nil {
			return err
		}
		now := nowUTC()
		for i := 0; i < rows; i++ {
			blank := &domain.Course{ID: uuid.New().String(), Seq: i + 1, CreatedAt: now, UpdatedAt: now}
			if err := txCourses.Create(ctx, blank); err != nil {
				return fmt.Errorf("seeding row %d: %w", i+1, err)
			}
		}
		return nil
	})
}

func (s *calculatorService) Settings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.Settings{ID: "default", DefaultRows: s.fallbackRows}, nil
	}
	return settings, err
}

func (s *calculatorService) SetDefaultRows(ctx context.Context, n int) (err error) {
	startedAt := nowUTC()
	defer func() { observe(ctx, s.observer, "set-default-rows", startedAt, map[string]any{"rows": n}, err) }()

	if n < 1 || n > domain.MaxDefaultRows {
		return &contract.InputError{
			Field:   "rows",
			Value:   fmt.Sprint(n),
			Message: fmt.Sprintf("must be between 1 and %d", domain.MaxDefaultRows),
		}
	}
	return s.settings.Upsert(ctx, &domain.Settings{ID: "default", DefaultRows: n})
}
