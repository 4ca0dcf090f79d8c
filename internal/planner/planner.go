package planner

import (
	"sort"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
)

// Plan covers the integer requirement with full-time and part-time shift
// windows using a greedy highest-marginal-benefit heuristic. It is
// deterministic and total: every input yields a well-formed result, even if
// that result is all shortage. A single run must stay sequential (each
// placement changes the scoring of the next), but distinct runs share nothing.
func Plan(required [24]int, p *Parameters) *domain.PlanResult {
	st := &state{deficit: required}

	switch p.Strategy {
	case StrategyPTFirst:
		placeAlternating(st, p, domain.ShiftPartTime, domain.ShiftFullTime)
	case StrategyFTFirst:
		placeAlternating(st, p, domain.ShiftFullTime, domain.ShiftPartTime)
	case StrategyMixed:
		placeMixed(st, p)
	default:
		// auto: prefer part-time on weekends, full-time otherwise
		if p.IsWeekend {
			placeAlternating(st, p, domain.ShiftPartTime, domain.ShiftFullTime)
		} else {
			placeAlternating(st, p, domain.ShiftFullTime, domain.ShiftPartTime)
		}
	}

	return st.result(required)
}

// placeAlternating keeps placing shifts in a fixed class order. The OR
// short-circuits: the second class is only attempted in an iteration where
// the first failed. The loop ends when both fail back to back.
func placeAlternating(st *state, p *Parameters, first, second domain.ShiftType) {
	for placeOne(st, p, first) || placeOne(st, p, second) {
	}
}

// placeMixed steers the placed FT/(FT+PT) ratio towards the target share.
// Unlike the alternating loops, both classes are attempted every iteration;
// the loop runs while any attempt succeeds.
func placeMixed(st *state, p *Parameters) {
	target := p.MixedFTShare
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}

	for {
		share := 1.0
		if st.placedFT+st.placedPT > 0 {
			share = float64(st.placedFT) / float64(st.placedFT+st.placedPT)
		}

		var progress bool
		if share < target {
			progress = placeOne(st, p, domain.ShiftFullTime)
			progress = placeOne(st, p, domain.ShiftPartTime) || progress
		} else {
			progress = placeOne(st, p, domain.ShiftPartTime)
			progress = placeOne(st, p, domain.ShiftFullTime) || progress
		}

		if !progress {
			return
		}
	}
}

// placeOne scans every feasible start hour for one shift of the given class
// and commits the highest-scoring window. Ties go to the smallest start hour
// (strict > against the running best during an ascending scan). A best score
// of zero means no remaining window is worth placing, and the attempt fails.
func placeOne(st *state, p *Parameters, class domain.ShiftType) bool {
	length := ftLengthHours
	hourCap, total := p.CapFT, p.TotalFT
	cov, placed := &st.covFT, &st.placedFT
	if class == domain.ShiftPartTime {
		length = p.PTLengthHours
		hourCap, total = p.CapPT, p.TotalPT
		cov, placed = &st.covPT, &st.placedPT
	}

	if length <= 0 || *placed >= total {
		return false
	}

	combinedCap := p.CapFT + p.CapPT

	bestScore := 0
	bestStart := -1
	for start := 0; start+length <= 24; start++ {
		score := 0
		feasible := true
		for h := start; h < start+length; h++ {
			combined := st.covFT[h] + st.covPT[h]
			if cov[h] >= hourCap || combined >= combinedCap {
				feasible = false
				break
			}
			room := min(combinedCap-combined, hourCap-cov[h])
			score += min(st.deficit[h], room)
		}
		if feasible && score > bestScore {
			bestScore = score
			bestStart = start
		}
	}

	if bestStart < 0 {
		return false
	}

	for h := bestStart; h < bestStart+length; h++ {
		cov[h]++
		if st.deficit[h] > 0 {
			st.deficit[h]--
		}
	}
	*placed++
	st.mergeWindow(class, bestStart, bestStart+length)

	return true
}

// mergeWindow folds a placement into an existing window with the same bounds
// or appends a new one.
func (st *state) mergeWindow(class domain.ShiftType, start, end int) {
	windows := &st.windowsFT
	if class == domain.ShiftPartTime {
		windows = &st.windowsPT
	}

	for i := range *windows {
		if (*windows)[i].Start == start && (*windows)[i].End == end {
			(*windows)[i].Count++
			return
		}
	}

	*windows = append(*windows, domain.ShiftWindow{
		Type:  class,
		Start: start,
		End:   end,
		Count: 1,
	})
}

func (st *state) result(required [24]int) *domain.PlanResult {
	res := &domain.PlanResult{
		ShiftsFT: sortWindows(st.windowsFT),
		ShiftsPT: sortWindows(st.windowsPT),
	}

	for h := 0; h < 24; h++ {
		covered := st.covFT[h] + st.covPT[h]
		res.Coverage[h] = covered
		res.Shortage[h] = max(0, required[h]-covered)
		res.Excess[h] = max(0, covered-required[h])
		if covered > res.MaxConcurrent {
			res.MaxConcurrent = covered
		}
	}

	return res
}

func sortWindows(windows []domain.ShiftWindow) []domain.ShiftWindow {
	sorted := make([]domain.ShiftWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	return sorted
}
