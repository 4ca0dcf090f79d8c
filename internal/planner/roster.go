package planner

import "github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"

// BuildRoster unrolls the merged shift windows into individual employees,
// one entry per unit of count, with sequential per-class IDs starting at 1.
// Each employee gets a single shift and a mid-shift lunch snapped to the
// half-hour grid, clamped inside the shift.
func BuildRoster(shiftsFT, shiftsPT []domain.ShiftWindow, lunchMinutes int) []domain.RosterEntry {
	roster := make([]domain.RosterEntry, 0)

	nextID := 1
	for _, w := range shiftsFT {
		nextID = unroll(&roster, w, lunchMinutes, nextID)
	}

	nextID = 1
	for _, w := range shiftsPT {
		nextID = unroll(&roster, w, lunchMinutes, nextID)
	}

	return roster
}

func unroll(roster *[]domain.RosterEntry, w domain.ShiftWindow, lunchMinutes, nextID int) int {
	startMin := w.Start * 60
	endMin := w.End * 60
	midpoint := startMin + (endMin-startMin)/2

	lunchStart := roundToHalfHour(midpoint - lunchMinutes/2)
	if lunchStart+lunchMinutes > endMin {
		lunchStart = endMin - lunchMinutes
	}
	if lunchStart < startMin {
		lunchStart = startMin
	}
	lunchEnd := min(lunchStart+lunchMinutes, endMin)

	for i := 0; i < w.Count; i++ {
		*roster = append(*roster, domain.RosterEntry{
			EmployeeID: nextID,
			Type:       w.Type,
			Start:      w.Start,
			End:        w.End,
			LunchStart: lunchStart,
			LunchEnd:   lunchEnd,
			Hours:      w.End - w.Start,
		})
		nextID++
	}

	return nextID
}

// roundToHalfHour snaps minutes to the nearest 30-minute boundary,
// rounding half up: 765 -> 780.
func roundToHalfHour(m int) int {
	if m < 0 {
		return 0
	}
	return (m + 15) / 30 * 30
}
