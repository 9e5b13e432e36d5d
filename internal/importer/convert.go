package importer

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/google/uuid"
)

// Workspace is the persisted calculator state a saved plan maps to.
type Workspace struct {
	State   *domain.AcademicState
	Courses []*domain.Course
}

// Convert transforms a validated SavedPlan into domain objects ready for
// persistence. Courses keep their saved order as seq 1..n; missing IDs
// are generated. Call ValidateSavedPlan first.
func Convert(plan *SavedPlan) *Workspace {
	now := time.Now().UTC().Truncate(time.Second)

	stamp := now
	if t, err := time.Parse(time.RFC3339, plan.LastUpdated); err == nil {
		stamp = t.UTC()
	}

	ws := &Workspace{
		State: &domain.AcademicState{
			CurrentCGPA:   domain.Numeric(plan.CurrentCGPA),
			CreditsEarned: domain.Numeric(plan.CreditsEarned),
			UpdatedAt:     &stamp,
		},
		Courses: make([]*domain.Course, 0, len(plan.Courses)),
	}

	for i, c := range plan.Courses {
		id := string(c.ID)
		if id == "" {
			id = uuid.New().String()
		}
		ws.Courses = append(ws.Courses, &domain.Course{
			ID:          id,
			Seq:         i + 1,
			Code:        strings.TrimSpace(c.CourseCode),
			CreditHours: domain.Numeric(c.CreditHours),
			Grade:       domain.GradeSymbol(c.Grade),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return ws
}

// FromWorkspace builds the saved-plan document for a workspace.
func FromWorkspace(state domain.AcademicState, courses []*domain.Course, now time.Time) *SavedPlan {
	plan := &SavedPlan{
		CurrentCGPA:   FieldText(state.CurrentCGPA),
		CreditsEarned: FieldText(state.CreditsEarned),
		Courses:       make([]CourseImport, 0, len(courses)),
		LastUpdated:   now.UTC().Format(time.RFC3339),
	}
	for _, c := range courses {
		plan.Courses = append(plan.Courses, CourseImport{
			ID:          FieldText(c.ID),
			CourseCode:  c.Code,
			CreditHours: FieldText(c.CreditHours),
			Grade:       string(c.Grade),
		})
	}
	return plan
}

// WriteSavedPlan encodes plan as indented JSON.
func WriteSavedPlan(w io.Writer, plan *SavedPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}
