package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/repository"
	"github.com/alexanderramin/cgpa/internal/service"
	"github.com/alexanderramin/cgpa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	courses := repository.NewSQLiteCourseRepo(database)
	states := repository.NewSQLiteAcademicStateRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	semesters := repository.NewSQLiteSemesterRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Calc:   service.NewCalculatorService(courses, states, settings, uow, domain.DefaultRows),
		Goals:  service.NewGoalService(states),
		WhatIf: service.NewWhatIfService(semesters, states, uow, nil),
		Export: service.NewExportService(courses, states),
		Import: service.NewImportService(uow),
		DBPath: db.MemoryPath,
		// IsInteractive left nil: wizards and live mode stay off.
	}
}

// seedWorkedExample stores a 3.5 CGPA over 60 credits and three courses
// worth a 3.42 semester GPA.
func seedWorkedExample(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	_, err := app.Calc.SetState(ctx, contract.StateInput{CurrentCGPA: "3.5", CreditsEarned: "60"})
	require.NoError(t, err)
	for _, c := range [][3]string{{"CS101", "3", "A"}, {"MATH201", "4", "B+"}, {"ENG102", "3", "B"}} {
		code, credits, grade := c[0], c[1], c[2]
		_, err := app.Calc.AddCourse(ctx, contract.CourseInput{Code: &code, CreditHours: &credits, Grade: &grade})
		require.NoError(t, err)
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// --- state ---

func TestStateCmd_SetAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "state", "set", "--cgpa", "3.25", "--credits", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "3.25")

	out, err = executeCmd(t, app, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "3.25")
	assert.Contains(t, out, "45")
	assert.NotContains(t, out, "No prior history")
}

func TestStateCmd_SetKeepsUnchangedField(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "state", "set", "--cgpa", "3.0", "--credits", "30")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "state", "set", "--credits", "33")
	require.NoError(t, err)

	state, err := app.Calc.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Numeric("3.0"), state.CurrentCGPA)
	assert.Equal(t, domain.Numeric("33"), state.CreditsEarned)
}

func TestStateCmd_RejectsOutOfRangeCGPA(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "state", "set", "--cgpa", "4.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 4")
}

// --- course ---

func TestCourseCmd_AddListSetRemove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	out, err := executeCmd(t, app, "course", "add", "CS101", "--credits", "3", "--grade", "a-")
	require.NoError(t, err)
	assert.Contains(t, out, "Added CS101 #1")

	courses, err := app.Calc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, domain.GradeAMinus, courses[0].Grade)

	out, err = executeCmd(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CS101")
	assert.Contains(t, out, "A-")

	_, err = executeCmd(t, app, "course", "set", "#1", "--grade", "B", "--code", "CS102")
	require.NoError(t, err)
	course, err := app.Calc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CS102", course[0].Code)
	assert.Equal(t, domain.GradeB, course[0].Grade)
	assert.Equal(t, domain.Numeric("3"), course[0].CreditHours)

	out, err = executeCmd(t, app, "course", "rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed course 1")

	courses, err = app.Calc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseCmd_AddIncompleteRow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "course", "add", "LAB")
	require.NoError(t, err)
	assert.Contains(t, out, "incomplete")
}

func TestCourseCmd_RejectsUnknownGrade(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "X", "--credits", "3", "--grade", "E")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grade")
}

func TestCourseCmd_RejectsCreditsAboveSix(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "X", "--credits", "7", "--grade", "A")
	var inputErr *contract.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "credits", inputErr.Field)
}

func TestCourseCmd_SetNeedsAFlag(t *testing.T) {
	app := testApp(t)
	seedWorkedExample(t, app)

	_, err := executeCmd(t, app, "course", "set", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestCourseCmd_UnknownRef(t *testing.T) {
	app := testApp(t)
	seedWorkedExample(t, app)

	_, err := executeCmd(t, app, "course", "rm", "#9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course #9 not found")
}

// --- calc ---

func TestCalcCmd_WorkedExample(t *testing.T) {
	app := testApp(t)
	seedWorkedExample(t, app)

	out, err := executeCmd(t, app, "calc")
	require.NoError(t, err)
	assert.Contains(t, out, "3.42")
	assert.Contains(t, out, "3.49")
	assert.Contains(t, out, "3 of 3")
	assert.Contains(t, out, "Good Standing")
}

func TestRootCmd_NonInteractiveRunsCalc(t *testing.T) {
	app := testApp(t)
	seedWorkedExample(t, app)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "RESULTS")
}

// --- goal ---

func TestGoalCmd_Unachievable(t *testing.T) {
	app := testApp(t)
	_, err := app.Calc.SetState(context.Background(), contract.StateInput{CurrentCGPA: "3.0", CreditsEarned: "60"})
	require.NoError(t, err)

	out, err := executeCmd(t, app, "goal", "--target", "3.3", "--credits", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "NOT ACHIEVABLE")
	assert.Contains(t, out, "4.50")
	assert.Contains(t, out, "ALTERNATIVE PATHS")
}

func TestGoalCmd_MissingState(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "--target", "3.3", "--credits", "15")
	var goalErr *contract.GoalError
	require.ErrorAs(t, err, &goalErr)
	assert.Equal(t, contract.GoalErrMissingState, goalErr.Code)
}

// --- whatif ---

func TestWhatIfCmd_PlanAndProject(t *testing.T) {
	app := testApp(t)
	_, err := app.Calc.SetState(context.Background(), contract.StateInput{CurrentCGPA: "3.0", CreditsEarned: "30"})
	require.NoError(t, err)

	out, err := executeCmd(t, app, "whatif", "semester", "add", "Fall", "2026")
	require.NoError(t, err)
	assert.Contains(t, out, "Fall 2026 #1")

	_, err = executeCmd(t, app, "whatif", "course", "add", "1", "--credits", "3", "--grade", "A")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "whatif", "course", "add", "#1", "--credits", "3", "--grade", "B")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "whatif", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Fall 2026")
	assert.Contains(t, out, "3.50")

	// (90 + 21) / 36 = 3.0833
	out, err = executeCmd(t, app, "whatif", "project", "--goal", "3.05")
	require.NoError(t, err)
	assert.Contains(t, out, "3.08")
	assert.Contains(t, out, "reaches your goal")

	_, err = executeCmd(t, app, "whatif", "course", "set", "1", "2", "--grade", "F")
	require.NoError(t, err)
	out, err = executeCmd(t, app, "whatif", "project", "--goal", "3.05")
	require.NoError(t, err)
	assert.Contains(t, out, "2.83")
	assert.Contains(t, out, "short of your goal")
}

func TestWhatIfCmd_ToggleOnlyCollapses(t *testing.T) {
	app := testApp(t)
	_, err := app.Calc.SetState(context.Background(), contract.StateInput{CurrentCGPA: "3.0", CreditsEarned: "30"})
	require.NoError(t, err)
	_, err = executeCmd(t, app, "whatif", "semester", "add")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "whatif", "course", "add", "1", "--credits", "3", "--grade", "A")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "whatif", "semester", "toggle", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Semester 1 is now closed")

	out, err = executeCmd(t, app, "whatif", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "closed (1 rows)")
	assert.NotContains(t, out, "CREDITS")

	// (90 + 12) / 33
	resp, err := app.WhatIf.Project(context.Background(), contract.WhatIfRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, resp.Projection.TotalNewCredits)
	assert.InDelta(t, 102.0/33.0, resp.Projection.ProjectedCGPA, 1e-9)
}

func TestWhatIfCmd_PresetAndRemove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := executeCmd(t, app, "whatif", "semester", "add", "Spring")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "whatif", "course", "add", "1", "--credits", "3", "--grade", "C")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "whatif", "preset", "allAs")
	require.NoError(t, err)
	assert.Contains(t, out, "1 course(s) regraded")

	semesters, err := app.WhatIf.ListSemesters(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeA, semesters[0].Courses[0].Grade)

	_, err = executeCmd(t, app, "whatif", "preset", "allFs")
	require.Error(t, err)

	_, err = executeCmd(t, app, "whatif", "course", "rm", "1", "1")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "whatif", "semester", "rm", "Spring")
	require.Error(t, err, "names are not references")
	_, err = executeCmd(t, app, "whatif", "semester", "rm", "1")
	require.NoError(t, err)

	semesters, err = app.WhatIf.ListSemesters(ctx)
	require.NoError(t, err)
	assert.Empty(t, semesters)
}

// --- honors ---

func TestHonorsCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "honors", "--cgpa", "3.75")
	require.NoError(t, err)
	assert.Contains(t, out, "Cum Laude")
	assert.Contains(t, out, "Your CGPA: 3.75")

	seedWorkedExample(t, app)
	out, err = executeCmd(t, app, "honors")
	require.NoError(t, err)
	assert.Contains(t, out, "Your CGPA: 3.49")

	_, err = executeCmd(t, app, "honors", "--cgpa", "5")
	require.Error(t, err)
}

// --- export / import ---

func TestExportCmd_CSVToStdout(t *testing.T) {
	app := testApp(t)
	seedWorkedExample(t, app)

	out, err := executeCmd(t, app, "export", "--no-summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Course Code,Credit Hours,Grade")
	assert.Contains(t, out, "MATH201,4,B+")
	assert.Contains(t, out, "Academic Standing,Good Standing")
	assert.NotContains(t, out, "New CGPA")
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "export", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestExportImportCmd_JSONRoundTrip(t *testing.T) {
	src := testApp(t)
	seedWorkedExample(t, src)
	path := filepath.Join(t.TempDir(), "plan.json")

	out, err := executeCmd(t, src, "export", "--format", "json", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported json to")

	dst := testApp(t)
	out, err = executeCmd(t, dst, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 course(s)")

	resp, err := dst.Calc.Calculate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 3.42, resp.Result.GPA, 1e-9)
	assert.Equal(t, domain.Numeric("3.5"), resp.State.CurrentCGPA)
}

func TestImportCmd_InvalidFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"currentCGPA": "9", "courses": []}`), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed")
}

// --- config / reset ---

func TestConfigCmd_RowsAndReset(t *testing.T) {
	app := testApp(t)
	seedWorkedExample(t, app)

	_, err := executeCmd(t, app, "config", "rows", "5")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "5")

	_, err = executeCmd(t, app, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	out, err = executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "5 blank row(s)")

	courses, err := app.Calc.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 5)
	for _, c := range courses {
		assert.True(t, c.IsEmpty())
	}
}

func TestConfigCmd_RowsRejectsOutOfRange(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "config", "rows", "0")
	require.Error(t, err)
	_, err = executeCmd(t, app, "config", "rows", "many")
	require.Error(t, err)
}

func TestLiveCmd_NeedsTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "live")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
