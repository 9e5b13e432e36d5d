package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/repository"
	"github.com/alexanderramin/cgpa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculator(r testRepos, observers ...UseCaseObserver) CalculatorService {
	return NewCalculatorService(r.courses, r.states, r.settings, testutil.NewTestUoW(r.db), domain.DefaultRows, observers...)
}

func TestCalculatorService_WorkedExample(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	_, err := svc.SetState(ctx, contract.StateInput{CurrentCGPA: "3.5", CreditsEarned: "60"})
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, courseInput("CS101", "3", "A"))
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, courseInput("MATH201", "4", "B+"))
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, courseInput("ENG102", "3", "b"))
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, courseInput("", "", ""))
	require.NoError(t, err)

	resp, err := svc.Calculate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.Result.TotalCredits)
	assert.InDelta(t, 3.42, resp.Result.GPA, 1e-9)
	assert.InDelta(t, 3.4886, resp.Result.CGPA, 1e-4)
	assert.True(t, resp.HasPrior)
	assert.Equal(t, 3, resp.CompleteCourses)
	assert.Len(t, resp.Courses, 4)
	assert.Equal(t, domain.StandingGood, resp.Standing)
	assert.NotNil(t, resp.LastUpdated)
}

func TestCalculatorService_FirstSemester(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	_, err := svc.AddCourse(ctx, courseInput("BIO", "4", "A-"))
	require.NoError(t, err)

	resp, err := svc.Calculate(ctx)
	require.NoError(t, err)
	assert.False(t, resp.HasPrior)
	assert.InDelta(t, 3.7, resp.Result.GPA, 1e-9)
	assert.InDelta(t, 3.7, resp.Result.CGPA, 1e-9)
	assert.Equal(t, domain.StandingDeansList, resp.Standing)
}

func TestCalculatorService_EmptyTable(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)

	resp, err := svc.Calculate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CalculationResult{}, resp.Result)
	assert.Nil(t, resp.LastUpdated)
}

func TestCalculatorService_AddCourse_Validation(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	tests := []struct {
		name    string
		credits string
		grade   string
		field   string
	}{
		{"credits too high", "7", "A", "credits"},
		{"credits zero", "0", "A", "credits"},
		{"credits text", "three", "A", "credits"},
		{"unknown grade", "3", "E", "grade"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddCourse(ctx, courseInput("X", tt.credits, tt.grade))
			var inputErr *contract.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCalculatorService_UpdateCourse_PartialEdit(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	c, err := svc.AddCourse(ctx, courseInput("CS", "3", ""))
	require.NoError(t, err)
	assert.False(t, c.IsComplete())

	updated, err := svc.UpdateCourse(ctx, c.ID, contract.CourseInput{Grade: strPtr("wp")})
	require.NoError(t, err)
	assert.Equal(t, domain.GradeWP, updated.Grade)
	assert.Equal(t, "CS", updated.Code)
	assert.Equal(t, domain.Numeric("3"), updated.CreditHours)
	assert.True(t, updated.IsComplete())

	_, err = svc.UpdateCourse(ctx, "missing", contract.CourseInput{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCalculatorService_DeleteCourse(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	c, err := svc.AddCourse(ctx, courseInput("CS", "3", "A"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCourse(ctx, c.ID))
	assert.ErrorIs(t, svc.DeleteCourse(ctx, c.ID), repository.ErrNotFound)
}

func TestCalculatorService_SetState_Validation(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	_, err := svc.SetState(ctx, contract.StateInput{CurrentCGPA: "4.2", CreditsEarned: "30"})
	var inputErr *contract.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "cgpa", inputErr.Field)

	_, err = svc.SetState(ctx, contract.StateInput{CurrentCGPA: "3.0", CreditsEarned: "-1"})
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "credits", inputErr.Field)

	state, err := svc.SetState(ctx, contract.StateInput{})
	require.NoError(t, err)
	assert.False(t, state.HasHistory())
}

func TestCalculatorService_Reset_SeedsDefaultRows(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	_, err := svc.SetState(ctx, contract.StateInput{CurrentCGPA: "3.1", CreditsEarned: "20"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := svc.AddCourse(ctx, courseInput(fmt.Sprintf("C%d", i), "3", "A"))
		require.NoError(t, err)
	}
	require.NoError(t, svc.SetDefaultRows(ctx, 4))

	require.NoError(t, svc.Reset(ctx))

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 4)
	for i, c := range courses {
		assert.True(t, c.IsEmpty())
		assert.Equal(t, i+1, c.Seq)
	}
	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.CurrentCGPA.IsBlank())
	assert.True(t, state.CreditsEarned.IsBlank())
}

func TestCalculatorService_Reset_FallbackRowsWithoutSettings(t *testing.T) {
	r := newTestRepos(t)
	svc := NewCalculatorService(r.courses, r.states, r.settings, testutil.NewTestUoW(r.db), 2)
	ctx := context.Background()

	_, err := r.db.ExecContext(ctx, `DELETE FROM settings`)
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))
	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, settings.DefaultRows)
}

func TestCalculatorService_Reset_RollsBackOnFailure(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	seed := newCalculator(r)
	_, err := seed.AddCourse(ctx, courseInput("KEEP", "3", "A"))
	require.NoError(t, err)

	// Exec #1 clears courses, #2 blanks the state.
	failUoW := &testutil.FailOnNthExecUoW{DB: r.db, FailOn: 2, Err: errors.New("injected state failure")}
	svc := NewCalculatorService(r.courses, r.states, r.settings, failUoW, domain.DefaultRows)

	err = svc.Reset(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected state failure")

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "KEEP", courses[0].Code)
}

func TestCalculatorService_SetDefaultRows_Bounds(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	var inputErr *contract.InputError
	assert.ErrorAs(t, svc.SetDefaultRows(ctx, 0), &inputErr)
	assert.ErrorAs(t, svc.SetDefaultRows(ctx, domain.MaxDefaultRows+1), &inputErr)
	require.NoError(t, svc.SetDefaultRows(ctx, domain.MaxDefaultRows))

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxDefaultRows, settings.DefaultRows)
}

func TestCalculatorService_ReportsUseCases(t *testing.T) {
	r := newTestRepos(t)
	obs := &recordingObserver{}
	svc := newCalculator(r, obs)
	ctx := context.Background()

	_, err := svc.AddCourse(ctx, courseInput("CS", "9", "A"))
	require.Error(t, err)
	failed := obs.last()
	assert.Equal(t, "add-course", failed.Name)
	assert.False(t, failed.Success)
	assert.Error(t, failed.Err)

	_, err = svc.Calculate(ctx)
	require.NoError(t, err)
	ok := obs.last()
	assert.Equal(t, "calculate", ok.Name)
	assert.True(t, ok.Success)
	assert.Equal(t, 0, ok.Fields["courses"])
}

func tableRow(id, code, credits, grade string) contract.TableRow {
	return contract.TableRow{ID: id, CourseInput: courseInput(code, credits, grade)}
}

func TestCalculatorService_SaveTable(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()
	keep, err := svc.AddCourse(ctx, courseInput("KEEP", "3", "B"))
	require.NoError(t, err)
	drop, err := svc.AddCourse(ctx, courseInput("DROP", "3", "F"))
	require.NoError(t, err)

	err = svc.SaveTable(ctx, contract.TableInput{
		State: contract.StateInput{CurrentCGPA: "3.5", CreditsEarned: "60"},
		Rows: []contract.TableRow{
			tableRow(keep.ID, "KEEP", "4", "a"),
			tableRow("", "NEW", "3", "B+"),
		},
		Removed: []string{drop.ID},
	})
	require.NoError(t, err)

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, keep.ID, courses[0].ID)
	assert.Equal(t, domain.GradeA, courses[0].Grade)
	assert.Equal(t, domain.Numeric("4"), courses[0].CreditHours)
	assert.Equal(t, "NEW", courses[1].Code)
	assert.Equal(t, 2, courses[1].Seq, "seq continues from the highest remaining row")

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Numeric("3.5"), state.CurrentCGPA)
}

func TestCalculatorService_SaveTable_ValidatesBeforeWriting(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()
	existing, err := svc.AddCourse(ctx, courseInput("CS101", "3", "A"))
	require.NoError(t, err)

	err = svc.SaveTable(ctx, contract.TableInput{
		State:   contract.StateInput{CurrentCGPA: "3.0", CreditsEarned: "30"},
		Rows:    []contract.TableRow{tableRow("", "NEW", "3", "A"), tableRow("", "BAD", "9", "A")},
		Removed: []string{existing.ID},
	})
	var inputErr *contract.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, err.Error(), "row 2")

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)
	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.CurrentCGPA.IsBlank())

	err = svc.SaveTable(ctx, contract.TableInput{State: contract.StateInput{CurrentCGPA: "4.5"}})
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "cgpa", inputErr.Field)
}

func TestCalculatorService_SaveTable_RemovedRowAlreadyGone(t *testing.T) {
	r := newTestRepos(t)
	svc := newCalculator(r)
	ctx := context.Background()

	err := svc.SaveTable(ctx, contract.TableInput{
		Rows:    []contract.TableRow{tableRow("", "NEW", "3", "A")},
		Removed: []string{"gone"},
	})
	require.NoError(t, err)

	err = svc.SaveTable(ctx, contract.TableInput{Rows: []contract.TableRow{tableRow("missing", "X", "", "")}})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCalculatorService_SaveTable_RollsBackOnFailure(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	seed := newCalculator(r)
	keep, err := seed.AddCourse(ctx, courseInput("KEEP", "3", "A"))
	require.NoError(t, err)
	drop, err := seed.AddCourse(ctx, courseInput("DROP", "3", "F"))
	require.NoError(t, err)

	// Exec #1 writes the state, #2 deletes DROP, #3 updates KEEP.
	failUoW := &testutil.FailOnNthExecUoW{DB: r.db, FailOn: 3, Err: errors.New("injected update failure")}
	svc := NewCalculatorService(r.courses, r.states, r.settings, failUoW, domain.DefaultRows)

	err = svc.SaveTable(ctx, contract.TableInput{
		State:   contract.StateInput{CurrentCGPA: "3.9"},
		Rows:    []contract.TableRow{tableRow(keep.ID, "KEEP", "3", "C")},
		Removed: []string{drop.ID},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected update failure")

	courses, err := seed.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, domain.GradeA, courses[0].Grade)
	assert.Equal(t, "DROP", courses[1].Code)
	state, err := seed.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.CurrentCGPA.IsBlank())
}
