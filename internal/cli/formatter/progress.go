package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGPABar renders a value on the 4.0 scale like [████████░░] 3.42 / 4.00.
func RenderGPABar(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > domain.MaxGradePoint {
		v = domain.MaxGradePoint
	}
	if width < 2 {
		width = 2
	}

	filled := int(v / domain.MaxGradePoint * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %s / %s", GPAColor(v).Render(bar), gpa.FormatGPA(v), gpa.FormatGPA(domain.MaxGradePoint))
}
