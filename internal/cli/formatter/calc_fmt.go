package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
)

// FormatCourseList renders the current-term table.
func FormatCourseList(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("No courses. Add one with: cgpa course add CODE --credits 3 --grade A")
	}

	headers := []string{"#", "CODE", "CREDITS", "GRADE", "POINTS", "ID"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		code := c.Code
		if code == "" {
			code = Dim("--")
		}
		points := Dim("--")
		if credits, ok := c.Credits(); ok {
			points = fmt.Sprintf("%.2f", credits*domain.GradePoint(c.Grade))
		}
		rows = append(rows, []string{
			SeqLabel(c.Seq),
			code,
			FieldText(c.CreditHours),
			Grade(c.Grade),
			points,
			TruncID(c.ID),
		})
	}
	return RenderTable(headers, rows)
}

// FormatState renders the prior standing.
func FormatState(s *domain.AcademicState) string {
	var b strings.Builder
	b.WriteString(kv("Current CGPA", FieldText(s.CurrentCGPA)) + "\n")
	b.WriteString(kv("Credits earned", FieldText(s.CreditsEarned)) + "\n")
	if s.UpdatedAt != nil {
		b.WriteString(kv("Updated", HumanTimestamp(*s.UpdatedAt)) + "\n")
	}
	if !s.HasHistory() {
		b.WriteString("\n" + Dim("No prior history: your CGPA will equal this semester's GPA."))
	}
	return RenderBox("Academic Standing", strings.TrimRight(b.String(), "\n"))
}

// FormatCalculation renders the live results panel.
func FormatCalculation(resp *contract.CalculationResponse) string {
	var b strings.Builder
	r := resp.Result

	b.WriteString(kv("Semester GPA", GPA(r.GPA)) + "\n")
	b.WriteString(kv("New CGPA", GPA(r.CGPA)) + "\n")
	b.WriteString(kv("Total credits", Credits(r.TotalCredits)) + "\n")
	b.WriteString(kv("Courses counted", fmt.Sprintf("%d of %d", resp.CompleteCourses, len(resp.Courses))) + "\n")
	b.WriteString(kv("Standing", StandingPill(resp.Standing)) + "\n\n")
	b.WriteString(RenderGPABar(r.CGPA, 24))

	if !resp.HasPrior {
		b.WriteString("\n\n" + Dim("No prior history: CGPA shown is this semester only."))
	} else {
		b.WriteString("\n\n" + Dim(fmt.Sprintf("Blended with %s CGPA over %s credits.",
			string(resp.State.CurrentCGPA), string(resp.State.CreditsEarned))))
	}
	if resp.LastUpdated != nil {
		b.WriteString("\n" + Dim("Last updated "+HumanTimestamp(*resp.LastUpdated)))
	}
	return RenderBox("Results", b.String())
}

// FormatSettings renders workspace preferences.
func FormatSettings(s *domain.Settings, dbPath string) string {
	var b strings.Builder
	b.WriteString(kv("Default rows", fmt.Sprintf("%d", s.DefaultRows)) + "\n")
	if dbPath != "" {
		b.WriteString(kv("Database", dbPath) + "\n")
	}
	return RenderBox("Settings", strings.TrimRight(b.String(), "\n"))
}
