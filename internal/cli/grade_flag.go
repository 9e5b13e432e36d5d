package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/spf13/pflag"
)

// gradeFlag is a --grade value that only accepts known letter grades.
// Input is case-insensitive and stored in canonical form.
type gradeFlag struct {
	value domain.GradeSymbol
}

var _ pflag.Value = (*gradeFlag)(nil)

func (g *gradeFlag) String() string { return string(g.value) }

func (g *gradeFlag) Type() string { return "grade" }

func (g *gradeFlag) Set(s string) error {
	sym, ok := domain.ParseGradeSymbol(strings.ToUpper(s))
	if !ok {
		return fmt.Errorf("unknown grade %q (valid: %s)", s, gradeList())
	}
	g.value = sym
	return nil
}

func gradeList() string {
	names := make([]string, 0, len(domain.GradeSymbols))
	for _, g := range domain.GradeSymbols {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}

// optionalString returns a pointer to v when the named flag was set.
func optionalString(flags *pflag.FlagSet, name, v string) *string {
	if !flags.Changed(name) {
		return nil
	}
	return &v
}
