package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/repository"
	"github.com/alexanderramin/cgpa/internal/testutil"
)

type testRepos struct {
	db        *sql.DB
	courses   *repository.SQLiteCourseRepo
	states    *repository.SQLiteAcademicStateRepo
	settings  *repository.SQLiteSettingsRepo
	semesters *repository.SQLiteSemesterRepo
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:        database,
		courses:   repository.NewSQLiteCourseRepo(database),
		states:    repository.NewSQLiteAcademicStateRepo(database),
		settings:  repository.NewSQLiteSettingsRepo(database),
		semesters: repository.NewSQLiteSemesterRepo(database),
	}
}

func strPtr(s string) *string { return &s }

func courseInput(code, credits, grade string) contract.CourseInput {
	return contract.CourseInput{Code: strPtr(code), CreditHours: strPtr(credits), Grade: strPtr(grade)}
}

func rowInput(credits, grade string) contract.SemesterCourseInput {
	return contract.SemesterCourseInput{CreditHours: strPtr(credits), Grade: strPtr(grade)}
}

// recordingObserver collects events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func testUoW(r testRepos) db.UnitOfWork {
	return testutil.NewTestUoW(r.db)
}
