package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
	"github.com/alexanderramin/cgpa/internal/importer"
	"github.com/alexanderramin/cgpa/internal/repository"
)

// ErrNothingToExport is returned when the sheet would have no course rows.
var ErrNothingToExport = errors.New("no data to export: add at least one course or include empty courses")

// ExportTimeLayout stamps the "Generated on" line.
const ExportTimeLayout = "2006-01-02 15:04:05"

type exportService struct {
	courses  repository.CourseRepo
	states   repository.AcademicStateRepo
	observer UseCaseObserver
}

func NewExportService(
	courses repository.CourseRepo,
	states repository.AcademicStateRepo,
	observers ...UseCaseObserver,
) ExportService {
	return &exportService{
		courses:  courses,
		states:   states,
		observer: useCaseObserverOrNoop(observers),
	}
}

// CSV writes the calculator sheet: a title block, the course rows, and
// the optional summary. The standing row closes the summary and is never
// written without it.
func (s *exportService) CSV(ctx context.Context, w io.Writer, opts contract.ExportOptions) (err error) {
	startedAt := nowUTC()
	fields := map[string]any{"format": string(contract.ExportCSV)}
	defer func() { observe(ctx, s.observer, "export", startedAt, fields, err) }()

	courses, state, err := s.load(ctx)
	if err != nil {
		return err
	}

	rows := make([]*domain.Course, 0, len(courses))
	for _, c := range courses {
		if opts.IncludeEmpty || !c.IsEmpty() {
			rows = append(rows, c)
		}
	}
	if len(rows) == 0 && !opts.IncludeEmpty {
		return ErrNothingToExport
	}
	fields["rows"] = len(rows)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	result := gpa.Calculate(toValues(courses), *state)

	cw := csv.NewWriter(w)
	records := [][]string{
		{"CGPA Calculator Export"},
		{"Generated on", now.Format(ExportTimeLayout)},
		{},
		{"Course Code", "Credit Hours", "Grade"},
	}
	for _, c := range rows {
		records = append(records, []string{c.Code, string(c.CreditHours), string(c.Grade)})
	}

	var tail [][]string
	if opts.IncludeSummary {
		tail = append(tail,
			[]string{"Current CGPA", string(state.CurrentCGPA)},
			[]string{"Credits Earned", string(state.CreditsEarned)},
			[]string{"Semester GPA", gpa.FormatGPA(result.GPA)},
			[]string{"New CGPA", gpa.FormatGPA(result.CGPA)},
			[]string{"Total Credits", strconv.FormatFloat(result.TotalCredits, 'f', -1, 64)},
		)
	}
	if opts.IncludeSummary && opts.IncludeStanding {
		tail = append(tail, []string{"Academic Standing", string(gpa.StandingFor(result.GPA))})
	}
	if len(tail) > 0 {
		records = append(records, []string{})
		records = append(records, tail...)
	}

	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes the saved-plan document that Import restores.
func (s *exportService) JSON(ctx context.Context, w io.Writer) (err error) {
	startedAt := nowUTC()
	fields := map[string]any{"format": string(contract.ExportJSON)}
	defer func() { observe(ctx, s.observer, "export", startedAt, fields, err) }()

	courses, state, err := s.load(ctx)
	if err != nil {
		return err
	}
	fields["rows"] = len(courses)
	return importer.WriteSavedPlan(w, importer.FromWorkspace(*state, courses, time.Now()))
}

func (s *exportService) load(ctx context.Context) ([]*domain.Course, *domain.AcademicState, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing courses: %w", err)
	}
	state, err := s.states.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading academic state: %w", err)
	}
	return courses, state, nil
}
