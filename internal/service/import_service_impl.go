package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/importer"
	"github.com/alexanderramin/cgpa/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) Import(ctx context.Context, filePath string) (*contract.ImportResult, error) {
	plan, err := importer.LoadSavedPlan(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPlan(ctx, plan)
}

// ImportPlan replaces the current table and prior standing with plan.
// What-if semesters are left alone.
func (s *importService) ImportPlan(ctx context.Context, plan *importer.SavedPlan) (result *contract.ImportResult, err error) {
	startedAt := nowUTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "import", startedAt, fields, err) }()

	if errs := importer.ValidateSavedPlan(plan); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	ws := importer.Convert(plan)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txStates := repository.NewSQLiteAcademicStateRepo(tx)

		if err := txCourses.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txStates.Upsert(ctx, ws.State); err != nil {
			return err
		}
		for _, c := range ws.Courses {
			if err := txCourses.Create(ctx, c); err != nil {
				return fmt.Errorf("creating course %d: %w", c.Seq, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["courses"] = len(ws.Courses)
	return &contract.ImportResult{
		CoursesImported: len(ws.Courses),
		HasState:        ws.State.HasHistory(),
		LastUpdated:     ws.State.UpdatedAt,
	}, nil
}
