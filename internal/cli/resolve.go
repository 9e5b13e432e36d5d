package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// ref is the part of a row that a command-line reference can match.
type ref struct {
	ID  string
	Seq int
}

// resolveRef resolves input against refs. It accepts, in order:
//   - a sequence number, with or without a leading "#"
//   - an exact ID
//   - a unique ID prefix
func resolveRef(kind, input string, refs []ref) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s reference is required", kind)
	}

	// 1. Sequence number
	if seq, err := strconv.Atoi(strings.TrimPrefix(input, "#")); err == nil {
		for _, r := range refs {
			if r.Seq == seq {
				return r.ID, nil
			}
		}
		return "", fmt.Errorf("%s #%d not found", kind, seq)
	}

	// 2. Exact ID match
	for _, r := range refs {
		if r.ID == input {
			return r.ID, nil
		}
	}

	// 3. ID prefix match
	var matches []string
	for _, r := range refs {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveCourseID(ctx context.Context, app *App, input string) (string, error) {
	courses, err := app.Calc.ListCourses(ctx)
	if err != nil {
		return "", err
	}
	refs := make([]ref, 0, len(courses))
	for _, c := range courses {
		refs = append(refs, ref{ID: c.ID, Seq: c.Seq})
	}
	return resolveRef("course", input, refs)
}

func resolveSemester(ctx context.Context, app *App, input string) (*domain.Semester, error) {
	semesters, err := app.WhatIf.ListSemesters(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]ref, 0, len(semesters))
	for _, s := range semesters {
		refs = append(refs, ref{ID: s.ID, Seq: s.Seq})
	}
	id, err := resolveRef("semester", input, refs)
	if err != nil {
		return nil, err
	}
	for _, s := range semesters {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("semester not found: %q", input)
}

// resolveSemesterCourseID resolves a row reference within one semester.
// Sequence numbers restart at 1 in every semester.
func resolveSemesterCourseID(sem *domain.Semester, input string) (string, error) {
	refs := make([]ref, 0, len(sem.Courses))
	for _, c := range sem.Courses {
		refs = append(refs, ref{ID: c.ID, Seq: c.Seq})
	}
	return resolveRef(sem.Name+" course", input, refs)
}
