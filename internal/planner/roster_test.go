package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/planner"
)

func TestBuildRosterLunchSnapping(t *testing.T) {
	// 8h shift at 9:00, 30 min lunch: midpoint 13:00 (780), candidate start
	// 765, round half up to the 30-minute grid -> 780
	shifts := []domain.ShiftWindow{{Type: domain.ShiftFullTime, Start: 9, End: 17, Count: 1}}

	roster := planner.BuildRoster(shifts, nil, 30)

	require.Len(t, roster, 1)
	assert.Equal(t, domain.RosterEntry{
		EmployeeID: 1,
		Type:       domain.ShiftFullTime,
		Start:      9,
		End:        17,
		LunchStart: 780,
		LunchEnd:   810,
		Hours:      8,
	}, roster[0])
}

func TestBuildRosterUnrollsCounts(t *testing.T) {
	shiftsFT := []domain.ShiftWindow{{Type: domain.ShiftFullTime, Start: 1, End: 9, Count: 5}}
	shiftsPT := []domain.ShiftWindow{{Type: domain.ShiftPartTime, Start: 10, End: 14, Count: 2}}

	roster := planner.BuildRoster(shiftsFT, shiftsPT, 30)

	require.Len(t, roster, 7)

	// per-class IDs restart at 1
	for i := 0; i < 5; i++ {
		assert.Equal(t, i+1, roster[i].EmployeeID)
		assert.Equal(t, domain.ShiftFullTime, roster[i].Type)
	}
	for i := 5; i < 7; i++ {
		assert.Equal(t, i-4, roster[i].EmployeeID)
		assert.Equal(t, domain.ShiftPartTime, roster[i].Type)
	}

	for _, entry := range roster {
		assert.GreaterOrEqual(t, entry.LunchStart, entry.Start*60)
		assert.LessOrEqual(t, entry.LunchEnd, entry.End*60)
		assert.LessOrEqual(t, entry.LunchStart, entry.LunchEnd)
	}
}

func TestBuildRosterLunchClampedIntoShortShift(t *testing.T) {
	// a lunch longer than the shift degenerates into the whole window
	shifts := []domain.ShiftWindow{{Type: domain.ShiftPartTime, Start: 0, End: 4, Count: 1}}

	roster := planner.BuildRoster(nil, shifts, 300)

	require.Len(t, roster, 1)
	assert.Equal(t, 0, roster[0].LunchStart)
	assert.Equal(t, 240, roster[0].LunchEnd)
}

func TestBuildRosterZeroLunch(t *testing.T) {
	shifts := []domain.ShiftWindow{{Type: domain.ShiftPartTime, Start: 10, End: 14, Count: 1}}

	roster := planner.BuildRoster(nil, shifts, 0)

	require.Len(t, roster, 1)
	assert.Equal(t, 720, roster[0].LunchStart)
	assert.Equal(t, 720, roster[0].LunchEnd)
}
