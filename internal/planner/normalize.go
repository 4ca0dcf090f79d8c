package planner

import (
	"math"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
)

// NormalizeRequirement turns the fractional forecast into the integer
// per-hour requirement: ceiling, floored at zero. Hours missing from the
// input stay at zero and out-of-range hours are ignored, so the planner
// always receives a complete 24-slot vector.
func NormalizeRequirement(entries []domain.ForecastEntry) [24]int {
	var required [24]int
	for _, e := range entries {
		if e.Hour < 0 || e.Hour > 23 {
			continue
		}
		if e.Staff <= 0 {
			continue
		}
		required[e.Hour] = int(math.Ceil(e.Staff))
	}
	return required
}
