package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
)

// parseGradeInput accepts a blank grade or any known symbol in any case.
func parseGradeInput(raw string) (domain.GradeSymbol, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", nil
	}
	g, ok := domain.ParseGradeSymbol(s)
	if !ok {
		return "", &contract.InputError{Field: "grade", Value: raw, Message: "unknown grade"}
	}
	return g, nil
}

// parseCreditInput accepts blank credit text or a value in (0, 6].
func parseCreditInput(raw string) (domain.Numeric, error) {
	n := domain.Numeric(strings.TrimSpace(raw))
	if n.IsBlank() {
		return "", nil
	}
	if !gpa.IsValidCreditHours(n) {
		return "", &contract.InputError{
			Field:   "credits",
			Value:   raw,
			Message: fmt.Sprintf("must be greater than 0 and at most %d", gpa.MaxCreditHours),
		}
	}
	return n, nil
}

// formatValidationErrors joins importer validation errors into one error.
func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// toValues copies repository pointers into the value slices the engine
// takes.
func toValues[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, *it)
	}
	return out
}
