package planner

import "github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"

// Recommend derives heuristic lower bounds on the hires needed to absorb the
// residual shortage, or nil when there is none. The bounds are total-hours
// estimates (the FT one additionally floored by the worst single hour); they
// are deliberately not re-validated against the planner's caps, so an edge
// case can exist where hiring the recommended count still leaves shortage.
func Recommend(shortage [24]int, ptLengthHours int) *domain.HireRecommendation {
	totalShort := 0
	peakShort := 0
	for _, s := range shortage {
		totalShort += s
		if s > peakShort {
			peakShort = s
		}
	}

	if totalShort == 0 {
		return nil
	}

	mixedFT := max(peakShort, totalShort/ftLengthHours)
	mixedRemainder := max(0, totalShort-mixedFT*ftLengthHours)

	return &domain.HireRecommendation{
		TotalShort:   totalShort,
		PeakShort:    peakShort,
		MinFT8:       max(ceilDiv(totalShort, ftLengthHours), peakShort),
		MinPTCurrent: ceilDiv(totalShort, ptLengthHours),
		MinPT4:       ceilDiv(totalShort, 4),
		MinPT6:       ceilDiv(totalShort, 6),
		Mixed: domain.MixedHire{
			FT:          mixedFT,
			PT:          ceilDiv(mixedRemainder, ptLengthHours),
			LengthHours: ptLengthHours,
		},
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
