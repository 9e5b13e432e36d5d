package service

import (
	"context"
	"io"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/importer"
)

type CalculatorService interface {
	State(ctx context.Context) (*domain.AcademicState, error)
	SetState(ctx context.Context, in contract.StateInput) (*domain.AcademicState, error)
	AddCourse(ctx context.Context, in contract.CourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id string, in contract.CourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	ListCourses(ctx context.Context) ([]*domain.Course, error)
	Calculate(ctx context.Context) (*contract.CalculationResponse, error)
	// SaveTable validates every row, then writes the state, the removals
	// and the rows in one transaction.
	SaveTable(ctx context.Context, in contract.TableInput) error
	Reset(ctx context.Context) error
	Settings(ctx context.Context) (*domain.Settings, error)
	SetDefaultRows(ctx context.Context, n int) error
}

type GoalService interface {
	Plan(ctx context.Context, req contract.GoalRequest) (*contract.GoalResponse, error)
}

type WhatIfService interface {
	ListSemesters(ctx context.Context) ([]*domain.Semester, error)
	AddSemester(ctx context.Context, name string) (*domain.Semester, error)
	RemoveSemester(ctx context.Context, id string) error
	ToggleSemester(ctx context.Context, id string) (*domain.Semester, error)
	AddCourse(ctx context.Context, semesterID string, in contract.SemesterCourseInput) (*domain.SemesterCourse, error)
	UpdateCourse(ctx context.Context, courseID string, in contract.SemesterCourseInput) error
	RemoveCourse(ctx context.Context, courseID string) error
	// ApplyPreset regrades every what-if course and returns how many rows
	// changed.
	ApplyPreset(ctx context.Context, req contract.PresetRequest) (int, error)
	Project(ctx context.Context, req contract.WhatIfRequest) (*contract.WhatIfResponse, error)
}

type ExportService interface {
	CSV(ctx context.Context, w io.Writer, opts contract.ExportOptions) error
	JSON(ctx context.Context, w io.Writer) error
}

type ImportService interface {
	Import(ctx context.Context, filePath string) (*contract.ImportResult, error)
	ImportPlan(ctx context.Context, plan *importer.SavedPlan) (*contract.ImportResult, error)
}
