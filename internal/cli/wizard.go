package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cgpaHuhTheme returns a custom huh theme using the formatter's Gruvbox palette.
func cgpaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardCourse asks for a course code, credit hours and grade. Values
// already set are shown as defaults.
func wizardCourse(code, credits, grade *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.GradeSymbols))
	for _, g := range domain.GradeSymbols {
		label := fmt.Sprintf("%-3s %s", g, gpa.FormatGPA(domain.GradePoint(g)))
		options = append(options, huh.NewOption(label, string(g)))
	}
	if *grade == "" {
		*grade = string(domain.GradeA)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course code").
				Placeholder("CS101").
				Value(code),
			huh.NewInput().
				Title("Credit hours").
				Description(fmt.Sprintf("Greater than 0, at most %d", gpa.MaxCreditHours)).
				Value(credits).
				Validate(validateCreditHours),
			huh.NewSelect[string]().
				Title("Grade").
				Options(options...).
				Value(grade),
		),
	).WithTheme(cgpaHuhTheme()).WithShowHelp(false)
}

// wizardGoal asks for a target CGPA and the credits planned next term.
func wizardGoal(target, credits *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target CGPA").
				Placeholder("3.50").
				Value(target).
				Validate(validateCGPA),
			huh.NewInput().
				Title("Credits next semester").
				Placeholder("15").
				Value(credits).
				Validate(validatePositive),
		),
	).WithTheme(cgpaHuhTheme()).WithShowHelp(false)
}

func validateCreditHours(s string) error {
	if !gpa.IsValidCreditHours(domain.Numeric(s)) {
		return fmt.Errorf("must be greater than 0 and at most %d", gpa.MaxCreditHours)
	}
	return nil
}

func validateCGPA(s string) error {
	if !gpa.IsValidCGPA(domain.Numeric(s)) {
		return fmt.Errorf("must be between 0 and 4")
	}
	return nil
}

func validatePositive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
