package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup that matches no row.
var ErrNotFound = errors.New("not found")

type AcademicStateRepo interface {
	Get(ctx context.Context) (*domain.AcademicState, error)
	Upsert(ctx context.Context, s *domain.AcademicState) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetBySeq(ctx context.Context, seq int) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type SemesterRepo interface {
	Create(ctx context.Context, s *domain.Semester) error
	GetByID(ctx context.Context, id string) (*domain.Semester, error)
	// List returns every semester in seq order with its courses loaded.
	List(ctx context.Context) ([]*domain.Semester, error)
	Update(ctx context.Context, s *domain.Semester) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	AddCourse(ctx context.Context, c *domain.SemesterCourse) error
	UpdateCourse(ctx context.Context, c *domain.SemesterCourse) error
	DeleteCourse(ctx context.Context, id string) error
}
