package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
)

// FormatGoal renders a goal plan and, when the target is out of reach
// this term, the alternative credit loads.
func FormatGoal(resp *contract.GoalResponse) string {
	var b strings.Builder

	b.WriteString(OutcomePill(resp.Outcome) + "\n\n")
	b.WriteString(kv("Target CGPA", gpa.FormatGPA(resp.TargetCGPA)))
	if resp.AcademicGoal != "" {
		b.WriteString("  " + StylePurple.Render(resp.AcademicGoal))
	}
	b.WriteString("\n")
	b.WriteString(kv("Current CGPA", gpa.FormatGPA(resp.CurrentCGPA)) + "\n")
	b.WriteString(kv("Credits earned", Credits(resp.CreditsEarned)) + "\n")
	b.WriteString(kv("Planned credits", Credits(resp.PlannedCredits)) + "\n\n")

	switch resp.Outcome {
	case domain.OutcomeAlreadyMet:
		b.WriteString("Your current CGPA already meets this target.")
	case domain.OutcomeUnachievable:
		b.WriteString(fmt.Sprintf("You would need a %s GPA, which exceeds the 4.0 maximum.",
			StyleRed.Render(gpa.FormatGPA(resp.RequiredGPA))))
	default:
		b.WriteString(fmt.Sprintf("You need a %s GPA in your upcoming courses.",
			GPA(resp.RequiredGPA)))
	}

	out := RenderBox("Goal Planner", b.String())
	if len(resp.Paths) > 0 {
		out += "\n\n" + FormatPaths(resp.Paths)
	}
	return out
}

// FormatPaths renders alternative paths as a table.
func FormatPaths(paths []domain.AlternativePath) string {
	headers := []string{"CREDITS", "REQUIRED GPA", "SEMESTERS", ""}
	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		status := StyleRed.Render("✖")
		required := StyleRed.Render(gpa.FormatGPA(p.RequiredGPA))
		if p.IsAchievable {
			status = StyleGreen.Render("✔ achievable")
			required = GPA(p.RequiredGPA)
		}
		rows = append(rows, []string{
			Credits(p.CreditsNeeded),
			required,
			fmt.Sprintf("~%d", p.SemestersEstimate),
			status,
		})
	}

	out := Header("Alternative paths") + "\n" + RenderTable(headers, rows)
	if last := paths[len(paths)-1]; !last.IsAchievable {
		out += Dim(fmt.Sprintf("Not reachable within %s credits.", Credits(last.CreditsNeeded)))
	}
	return strings.TrimRight(out, "\n")
}
