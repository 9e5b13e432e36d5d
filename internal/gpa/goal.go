package gpa

import (
	"math"

	"github.com/alexanderramin/cgpa/internal/domain"
)

const (
	// PathStepCredits is how many credits each explored path adds.
	PathStepCredits = 3
	// PathCeilingCredits bounds the extra credits the explorer will try.
	PathCeilingCredits = 42
	// FullTimeLoad is the assumed per-term credit cap used for estimates.
	FullTimeLoad = 15
)

// SolveRequiredGPA returns the average grade point needed over
// plannedCredits to reach target.
//
// The result is not clamped:
//   - > 4.0 means the target cannot be reached in one term
//   - < 0 means the current standing already exceeds the target
//   - plannedCredits <= 0 returns 0, which is ambiguous with a genuine
//     zero; callers must check plannedCredits first
//
// Absent prior fields count as zero (no history).
func SolveRequiredGPA(target float64, prior domain.AcademicState, plannedCredits float64) float64 {
	if plannedCredits <= 0 {
		return 0
	}
	priorCGPA := prior.CurrentCGPA.OrZero()
	priorCredits := prior.CreditsEarned.OrZero()

	required := (target*(priorCredits+plannedCredits) - priorCGPA*priorCredits) / plannedCredits
	if math.IsNaN(required) {
		return 0
	}
	return required
}

// ExplorePaths widens the credit load in PathStepCredits increments
// until the required average drops to 4.0 or the extra load reaches
// PathCeilingCredits. The result has between 1 and 15 entries; the last
// one is either achievable or sits at baseCredits+PathCeilingCredits.
// A non-positive baseCredits yields nil.
func ExplorePaths(target float64, prior domain.AcademicState, baseCredits float64) []domain.AlternativePath {
	if baseCredits <= 0 || math.IsNaN(baseCredits) || math.IsInf(baseCredits, 0) {
		return nil
	}

	perTerm := math.Min(baseCredits, FullTimeLoad)
	paths := make([]domain.AlternativePath, 0, PathCeilingCredits/PathStepCredits+1)

	for extra := 0; extra <= PathCeilingCredits; extra += PathStepCredits {
		total := baseCredits + float64(extra)
		required := SolveRequiredGPA(target, prior, total)
		achievable := required <= domain.MaxGradePoint

		paths = append(paths, domain.AlternativePath{
			CreditsNeeded:     total,
			RequiredGPA:       required,
			IsAchievable:      achievable,
			SemestersEstimate: int(math.Ceil(total / perTerm)),
		})

		if achievable {
			break
		}
	}
	return paths
}
