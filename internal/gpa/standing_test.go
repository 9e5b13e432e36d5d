package gpa

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingFor(t *testing.T) {
	cases := []struct {
		gpa  float64
		want domain.Standing
	}{
		{4.0, domain.StandingPresidentsList},
		{3.8, domain.StandingPresidentsList},
		{3.79, domain.StandingDeansList},
		{3.5, domain.StandingDeansList},
		{3.49, domain.StandingGood},
		{2.0, domain.StandingGood},
		{1.99, domain.StandingNotGood},
		{0, domain.StandingNotGood},
		{-1, domain.StandingUnknown},
		{4.2, domain.StandingUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StandingFor(tc.gpa), "gpa=%v", tc.gpa)
	}
}

func TestAcademicGoal(t *testing.T) {
	assert.Equal(t, "Summa Cum Laude", AcademicGoal(3.95))
	assert.Equal(t, "Magna Cum Laude", AcademicGoal(3.7))
	assert.Equal(t, "Cum Laude", AcademicGoal(3.5))
	assert.Equal(t, "Good Standing", AcademicGoal(3.0))
	assert.Equal(t, "", AcademicGoal(2.9))
}

func TestHonor_Qualifies(t *testing.T) {
	summa := HonorsGuide[0]
	assert.True(t, summa.Qualifies(3.95))
	assert.False(t, summa.Qualifies(3.85))

	deans := HonorsGuide[len(HonorsGuide)-1]
	assert.True(t, deans.Qualifies(4.0))
	assert.False(t, deans.Qualifies(3.49))
}

func TestApplyPreset_Fixed(t *testing.T) {
	in := []domain.Semester{semester("Fall", row("3", ""), row("4", domain.GradeF))}

	as := ApplyPreset(in, domain.PresetAllAs, nil)
	for _, c := range as[0].Courses {
		assert.Equal(t, domain.GradeA, c.Grade)
	}

	bs := ApplyPreset(in, domain.PresetAllBs, nil)
	for _, c := range bs[0].Courses {
		assert.Equal(t, domain.GradeBPlus, c.Grade)
	}

	// Input is not mutated.
	assert.Equal(t, domain.GradeSymbol(""), in[0].Courses[0].Grade)
	assert.Equal(t, domain.GradeF, in[0].Courses[1].Grade)
}

func TestApplyPreset_BandsStayInBand(t *testing.T) {
	rows := make([]domain.SemesterCourse, 50)
	for i := range rows {
		rows[i] = row("3", "")
	}
	in := []domain.Semester{semester("Fall", rows...)}

	out := ApplyPreset(in, domain.PresetBAverage, rand.New(rand.NewSource(7)))
	for _, c := range out[0].Courses {
		assert.Contains(t, bBand, c.Grade)
	}
	out = ApplyPreset(in, domain.PresetCAverage, rand.New(rand.NewSource(7)))
	for _, c := range out[0].Courses {
		assert.Contains(t, cBand, c.Grade)
	}
}

func TestApplyPreset_SeededIsDeterministic(t *testing.T) {
	in := []domain.Semester{semester("Fall", row("3", ""), row("3", ""), row("3", ""), row("3", ""))}
	a := ApplyPreset(in, domain.PresetBAverage, rand.New(rand.NewSource(99)))
	b := ApplyPreset(in, domain.PresetBAverage, rand.New(rand.NewSource(99)))
	require.Equal(t, a, b)
	assert.Equal(t, Project(domain.AcademicState{}, a), Project(domain.AcademicState{}, b))
}

func TestApplyPreset_UnknownLeavesGrades(t *testing.T) {
	in := []domain.Semester{semester("Fall", row("3", domain.GradeD))}
	out := ApplyPreset(in, domain.Preset("allFs"), nil)
	assert.Equal(t, domain.GradeD, out[0].Courses[0].Grade)
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidCreditHours("3"))
	assert.True(t, IsValidCreditHours("6"))
	assert.False(t, IsValidCreditHours("7"))
	assert.False(t, IsValidCreditHours("0"))
	assert.False(t, IsValidCreditHours(""))

	assert.True(t, IsValidCGPA("0"))
	assert.True(t, IsValidCGPA("4.0"))
	assert.False(t, IsValidCGPA("4.01"))
	assert.False(t, IsValidCGPA(""))

	assert.Equal(t, "3.48", FormatGPA(3.4799999))
	assert.Equal(t, "0.00", FormatGPA(0))
}
