package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/planner"
)

func intPtr(v int) *int { return &v }

func TestResolveDefaultsTotalsToCaps(t *testing.T) {
	cfg := planner.Resolve(&planner.Options{
		CapFT:         5,
		CapPT:         3,
		PTLengthHours: 4,
	}, false)

	// a blank total must never allow more employees than the caps imply
	assert.Equal(t, 5, cfg.TotalFT)
	assert.Equal(t, 3, cfg.TotalPT)
}

func TestResolveKeepsExplicitTotals(t *testing.T) {
	cfg := planner.Resolve(&planner.Options{
		CapFT:         5,
		CapPT:         3,
		TotalFT:       intPtr(2),
		TotalPT:       intPtr(0),
		PTLengthHours: 6,
	}, false)

	assert.Equal(t, 2, cfg.TotalFT)
	assert.Equal(t, 0, cfg.TotalPT)
	assert.Equal(t, 6, cfg.PTLengthHours)
}

func TestResolveClampsAndDefaults(t *testing.T) {
	cfg := planner.Resolve(&planner.Options{
		CapFT:         -3,
		CapPT:         -1,
		Strategy:      planner.Strategy("nonsense"),
		PTLengthHours: 5,
		LunchMinutes:  -10,
	}, false)

	assert.Equal(t, 0, cfg.CapFT)
	assert.Equal(t, 0, cfg.CapPT)
	assert.Equal(t, string(planner.StrategyAuto), cfg.Strategy)
	assert.Equal(t, 4, cfg.PTLengthHours)
	assert.Equal(t, 0, cfg.LunchMinutes)
}

func TestResolveWeekendPTLengthOverride(t *testing.T) {
	opts := &planner.Options{
		CapFT:                5,
		CapPT:                5,
		PTLengthHours:        4,
		WeekendPTLengthHours: intPtr(6),
	}

	weekday := planner.Resolve(opts, false)
	assert.Equal(t, 4, weekday.PTLengthHours)

	weekend := planner.Resolve(opts, true)
	assert.Equal(t, 6, weekend.PTLengthHours)
	assert.True(t, weekend.IsWeekend)
}

func fullDayEntries(staff float64) []domain.ForecastEntry {
	entries := make([]domain.ForecastEntry, 24)
	for h := 0; h < 24; h++ {
		entries[h] = domain.ForecastEntry{Hour: h, Staff: staff}
	}
	return entries
}

func TestRunPipeline(t *testing.T) {
	entries := fullDayEntries(0)
	entries[9] = domain.ForecastEntry{Hour: 9, Staff: 2.4}
	entries[10] = domain.ForecastEntry{Hour: 10, Staff: 3}

	artifacts := planner.Run(entries, false, &planner.Options{
		CapFT:         3,
		CapPT:         0,
		Strategy:      planner.StrategyFTFirst,
		PTLengthHours: 4,
		LunchMinutes:  30,
	})

	require.NotNil(t, artifacts)
	assert.Equal(t, 3, artifacts.Required[9]) // 2.4 rounds up
	assert.Equal(t, 3, artifacts.Required[10])

	// capacity suffices, so no hire recommendation is produced
	assert.Nil(t, artifacts.Hires)
	assert.Equal(t, 0, artifacts.Result.Shortage[9])
	assert.Equal(t, 0, artifacts.Result.Shortage[10])

	// one roster entry per placed shift
	assert.Len(t, artifacts.Roster, countShifts(artifacts.Result.ShiftsFT)+countShifts(artifacts.Result.ShiftsPT))
	for _, entry := range artifacts.Roster {
		assert.GreaterOrEqual(t, entry.LunchStart, entry.Start*60)
		assert.LessOrEqual(t, entry.LunchEnd, entry.End*60)
	}

	assert.Equal(t, 3, artifacts.Config.TotalFT)
	assert.Equal(t, 30, artifacts.Config.LunchMinutes)
}

func TestRunUndersizedCapacityRecommendsHires(t *testing.T) {
	entries := fullDayEntries(0)
	entries[8] = domain.ForecastEntry{Hour: 8, Staff: 6}

	artifacts := planner.Run(entries, false, &planner.Options{
		CapFT:         2,
		CapPT:         0,
		Strategy:      planner.StrategyFTFirst,
		PTLengthHours: 4,
		LunchMinutes:  30,
	})

	require.NotNil(t, artifacts.Hires)
	assert.Equal(t, 4, artifacts.Hires.TotalShort)
	assert.Equal(t, 4, artifacts.Hires.PeakShort)
	assert.Equal(t, 4, artifacts.Hires.MinFT8)
}

func TestRunIsDeterministic(t *testing.T) {
	entries := fullDayEntries(2.5)
	opts := &planner.Options{
		CapFT:          2,
		CapPT:          2,
		Strategy:       planner.StrategyMixed,
		MixedFTPercent: 50,
		PTLengthHours:  4,
		LunchMinutes:   45,
	}

	first := planner.Run(entries, true, opts)
	second := planner.Run(entries, true, opts)

	assert.Equal(t, first, second)
}
