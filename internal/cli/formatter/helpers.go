package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanTimestamp returns a human-friendly timestamp relative to now.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom returns a human-friendly timestamp relative to now.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Local().Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// SeqLabel renders a row reference such as "#3".
func SeqLabel(seq int) string {
	return StyleBlue.Render(fmt.Sprintf("#%d", seq))
}

// GPA renders a two-decimal GPA colored by band.
func GPA(v float64) string {
	return GPAColor(v).Render(gpa.FormatGPA(v))
}

// Credits renders a credit total without trailing zeros.
func Credits(v float64) string {
	return fmt.Sprintf("%g", v)
}

// FieldText renders a raw input value, showing blanks as a dim dash.
func FieldText(n domain.Numeric) string {
	if n.IsBlank() {
		return Dim("--")
	}
	if _, ok := n.Float(); !ok {
		return StyleRed.Render(string(n) + "?")
	}
	return string(n)
}

// Grade renders a grade symbol in its color, or a dim dash when blank.
func Grade(g domain.GradeSymbol) string {
	if g == "" {
		return Dim("--")
	}
	return GradeColor(g).Render(string(g))
}

// kv renders an aligned label/value line.
func kv(label, value string) string {
	return fmt.Sprintf("%-16s %s", Dim(label), value)
}
