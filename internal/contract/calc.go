package contract

import (
	"time"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// CalculationResponse is the live summary of the current-term table.
type CalculationResponse struct {
	Result   domain.CalculationResult
	Courses  []*domain.Course
	State    domain.AcademicState
	HasPrior bool
	// CompleteCourses counts rows that contributed to the result.
	CompleteCourses int
	// Standing is based on the semester GPA, as on the export sheet.
	Standing    domain.Standing
	LastUpdated *time.Time
}

// CourseInput carries raw field edits. Nil fields are left unchanged on
// update.
type CourseInput struct {
	Code        *string
	CreditHours *string
	Grade       *string
}

// StateInput carries raw prior-standing fields.
type StateInput struct {
	CurrentCGPA   string
	CreditsEarned string
}

// TableInput is the whole current-term table as edited on screen.
// Removed lists saved rows the user deleted.
type TableInput struct {
	State   StateInput
	Rows    []TableRow
	Removed []string
}

// TableRow is one edited row. An empty ID marks a row not yet saved.
type TableRow struct {
	ID string
	CourseInput
}
