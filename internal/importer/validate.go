package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
)

// ValidateSavedPlan checks a saved plan before conversion. Blank fields
// are allowed anywhere since a half-filled table is a valid save.
// Returns a slice of all validation errors found.
func ValidateSavedPlan(plan *SavedPlan) []error {
	var errs []error

	cgpa := domain.Numeric(plan.CurrentCGPA)
	if !cgpa.IsBlank() && !gpa.IsValidCGPA(cgpa) {
		errs = append(errs, fmt.Errorf("currentCGPA %q must be between 0 and 4", plan.CurrentCGPA))
	}
	credits := domain.Numeric(plan.CreditsEarned)
	if !credits.IsBlank() {
		if v, ok := credits.Float(); !ok || v < 0 {
			errs = append(errs, fmt.Errorf("creditsEarned %q must be a non-negative number", plan.CreditsEarned))
		}
	}

	if plan.LastUpdated != "" {
		if _, err := time.Parse(time.RFC3339, plan.LastUpdated); err != nil {
			errs = append(errs, fmt.Errorf("lastUpdated: invalid timestamp %q (expected RFC 3339)", plan.LastUpdated))
		}
	}

	ids := make(map[string]bool)
	for i, c := range plan.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		if id := string(c.ID); id != "" {
			if ids[id] {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, id))
			}
			ids[id] = true
		}
		if c.Grade != "" && !domain.GradeSymbol(c.Grade).IsValid() {
			errs = append(errs, fmt.Errorf("%s: unknown grade %q", prefix, c.Grade))
		}
		hours := domain.Numeric(c.CreditHours)
		if !hours.IsBlank() && !gpa.IsValidCreditHours(hours) {
			errs = append(errs, fmt.Errorf("%s: creditHours %q must be greater than 0 and at most %d",
				prefix, c.CreditHours, gpa.MaxCreditHours))
		}
	}

	return errs
}
