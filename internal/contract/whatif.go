package contract

import (
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
)

// WhatIfRequest projects every planned semester. Goal is optional.
type WhatIfRequest struct {
	Goal domain.Numeric
}

// PresetRequest regrades the what-if table. A non-zero Seed replaces the
// service's random source for this call only.
type PresetRequest struct {
	Preset domain.Preset
	Seed   int64
}

type WhatIfResponse struct {
	Semesters     []*domain.Semester
	CurrentCGPA   float64
	CreditsEarned float64
	Projection    gpa.Projection
	HasGoal       bool
	Goal          float64
	Achievability gpa.Achievability
}

// SemesterCourseInput carries raw what-if row edits. Nil fields are left
// unchanged on update.
type SemesterCourseInput struct {
	CreditHours *string
	Grade       *string
}
