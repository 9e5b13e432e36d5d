package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/gpa"
)

// FormatHonors renders the honors guide. When hasCGPA is set, tiers the
// CGPA qualifies for are marked.
func FormatHonors(cgpa float64, hasCGPA bool) string {
	headers := []string{"HONOR", "RANGE", ""}
	rows := make([][]string, 0, len(gpa.HonorsGuide))
	for _, h := range gpa.HonorsGuide {
		rng := fmt.Sprintf("%.2f+", h.Min)
		if h.Max > 0 {
			rng = fmt.Sprintf("%.2f – %.2f", h.Min, h.Max)
		}
		mark := ""
		if hasCGPA && h.Qualifies(cgpa) {
			mark = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{StylePurple.Render(h.Name), rng, mark})
	}

	out := Header("Honors guide") + "\n" + RenderTable(headers, rows)
	if hasCGPA {
		out += Dim("Your CGPA: ") + GPA(cgpa)
	} else {
		out += Dim("Honors requirements vary by institution.")
	}
	return strings.TrimRight(out, "\n")
}
