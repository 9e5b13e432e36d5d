package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GPAColor picks a style for a value on the 4.0 scale.
func GPAColor(v float64) lipgloss.Style {
	switch {
	case v >= 3.5:
		return StyleGreen
	case v >= 2.0:
		return StyleYellow
	default:
		return StyleRed
	}
}

// GradeColor colors a letter grade by its point value. Withdrawals are dim.
func GradeColor(g domain.GradeSymbol) lipgloss.Style {
	switch g {
	case domain.GradeW, domain.GradeWP, domain.GradeWF:
		return StyleDim
	case "":
		return StyleDim
	}
	return GPAColor(domain.GradePoint(g))
}

// StandingPill returns a colored academic standing label.
func StandingPill(s domain.Standing) string {
	switch s {
	case domain.StandingPresidentsList:
		return StylePurple.Render("★ " + string(s))
	case domain.StandingDeansList:
		return StyleGreen.Render("● " + string(s))
	case domain.StandingGood:
		return StyleBlue.Render("● " + string(s))
	case domain.StandingNotGood:
		return StyleRed.Render("▲ " + string(s))
	default:
		return StyleDim.Render(string(s))
	}
}

// OutcomePill returns a colored goal outcome indicator.
func OutcomePill(o domain.GoalOutcome) string {
	switch o {
	case domain.OutcomeAchievable:
		return StyleGreen.Render("● ACHIEVABLE")
	case domain.OutcomeUnachievable:
		return StyleRed.Render("▲ NOT ACHIEVABLE THIS TERM")
	case domain.OutcomeAlreadyMet:
		return StylePurple.Render("✔ ALREADY MET")
	default:
		return StyleDim.Render(string(o))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
