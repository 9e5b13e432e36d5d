package testutil

import (
	"time"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/google/uuid"
)

// Course options
type CourseOption func(*domain.Course)

func WithCredits(credits string) CourseOption {
	return func(c *domain.Course) {
		c.CreditHours = domain.Numeric(credits)
	}
}

func WithGrade(g domain.GradeSymbol) CourseOption {
	return func(c *domain.Course) {
		c.Grade = g
	}
}

func WithSeq(seq int) CourseOption {
	return func(c *domain.Course) {
		c.Seq = seq
	}
}

// NewTestCourse returns a complete three-credit A course. Seq is left
// zero so the repository allocates it.
func NewTestCourse(code string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Course{
		ID:          uuid.New().String(),
		Code:        code,
		CreditHours: "3",
		Grade:       domain.GradeA,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewBlankCourse returns an empty row like the ones a reset seeds.
func NewBlankCourse() *domain.Course {
	c := NewTestCourse("")
	c.CreditHours = ""
	c.Grade = ""
	return c
}

// Semester options
type SemesterOption func(*domain.Semester)

func WithClosed() SemesterOption {
	return func(s *domain.Semester) {
		s.IsOpen = false
	}
}

// WithRow appends a what-if course row.
func WithRow(credits string, g domain.GradeSymbol) SemesterOption {
	return func(s *domain.Semester) {
		s.Courses = append(s.Courses, NewTestSemesterCourse(s.ID, credits, g))
	}
}

func NewTestSemester(name string, opts ...SemesterOption) *domain.Semester {
	s := &domain.Semester{
		ID:        uuid.New().String(),
		Name:      name,
		IsOpen:    true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestSemesterCourse(semesterID, credits string, g domain.GradeSymbol) domain.SemesterCourse {
	return domain.SemesterCourse{
		ID:          uuid.New().String(),
		SemesterID:  semesterID,
		CreditHours: domain.Numeric(credits),
		Grade:       g,
	}
}

// NewTestState returns an AcademicState with the given raw fields.
func NewTestState(cgpa, credits string) *domain.AcademicState {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.AcademicState{
		CurrentCGPA:   domain.Numeric(cgpa),
		CreditsEarned: domain.Numeric(credits),
		UpdatedAt:     &now,
	}
}
