package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
)

// FormatSemesters renders every what-if semester. Collapsed semesters show
// only their header line.
func FormatSemesters(semesters []*domain.Semester) string {
	if len(semesters) == 0 {
		return Dim("No semesters. Add one with: cgpa whatif semester add \"Fall\"")
	}

	var b strings.Builder
	for i, sem := range semesters {
		if i > 0 {
			b.WriteString("\n")
		}
		state := StyleGreen.Render("▾ open")
		if !sem.IsOpen {
			state = Dim(fmt.Sprintf("▸ closed (%d rows)", len(sem.Courses)))
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			SeqLabel(sem.Seq), Bold(sem.Name), state,
			GPA(gpa.SemesterGPA(semesterCourses(sem))),
		))

		if !sem.IsOpen {
			continue
		}
		if len(sem.Courses) == 0 {
			b.WriteString("  " + Dim("no courses") + "\n")
			continue
		}
		rows := make([][]string, 0, len(sem.Courses))
		for _, c := range sem.Courses {
			rows = append(rows, []string{SeqLabel(c.Seq), FieldText(c.CreditHours), Grade(c.Grade)})
		}
		for _, line := range strings.Split(strings.TrimRight(RenderTable([]string{"#", "CREDITS", "GRADE"}, rows), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// semesterCourses adapts what-if rows for the course aggregator.
func semesterCourses(sem *domain.Semester) []domain.Course {
	out := make([]domain.Course, 0, len(sem.Courses))
	for _, c := range sem.Courses {
		out = append(out, domain.Course{CreditHours: c.CreditHours, Grade: c.Grade})
	}
	return out
}

// FormatWhatIf renders the projection and goal verdict.
func FormatWhatIf(resp *contract.WhatIfResponse) string {
	var b strings.Builder
	p := resp.Projection

	b.WriteString(kv("Current CGPA", gpa.FormatGPA(resp.CurrentCGPA)) + "\n")
	b.WriteString(kv("Credits earned", Credits(resp.CreditsEarned)) + "\n")
	b.WriteString(kv("Semesters", fmt.Sprintf("%d", len(resp.Semesters))) + "\n")
	b.WriteString(kv("New credits", Credits(p.TotalNewCredits)) + "\n")
	b.WriteString(kv("Projected CGPA", GPA(p.ProjectedCGPA)) + "\n\n")
	b.WriteString(RenderGPABar(p.ProjectedCGPA, 24))

	if resp.HasGoal {
		b.WriteString("\n\n" + kv("Goal", gpa.FormatGPA(resp.Goal)) + "\n")
		b.WriteString(goalVerdict(resp))
	}
	return RenderBox("What-If Projection", b.String())
}

func goalVerdict(resp *contract.WhatIfResponse) string {
	a := resp.Achievability
	switch {
	case a.IsGoalEqualCurrent:
		return StylePurple.Render("✔ Your current CGPA already equals this goal.")
	case a.IsGoalBelowCurrent:
		return StylePurple.Render("✔ Your current CGPA is already above this goal.")
	case a.IsAchievable && a.IsMaxGoal:
		return StyleGreen.Render("✔ This plan reaches a perfect 4.00.")
	case a.IsAchievable:
		return StyleGreen.Render("✔ This plan reaches your goal.")
	case a.IsMaxGoal:
		return StyleRed.Render("✖ A 4.00 needs every planned course at A.")
	default:
		gap := resp.Goal - resp.Projection.ProjectedCGPA
		return StyleRed.Render(fmt.Sprintf("✖ %s short of your goal.", gpa.FormatGPA(gap)))
	}
}
