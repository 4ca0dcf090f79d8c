package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/planner"
)

func TestNormalizeRequirement(t *testing.T) {
	entries := []domain.ForecastEntry{
		{Hour: 0, Staff: 3.2},
		{Hour: 1, Staff: 4},
		{Hour: 2, Staff: 0.01},
		{Hour: 3, Staff: -1.5}, // clamped, never rejected
		{Hour: 25, Staff: 9},   // out of range, ignored
	}

	required := planner.NormalizeRequirement(entries)

	assert.Equal(t, 4, required[0])
	assert.Equal(t, 4, required[1])
	assert.Equal(t, 1, required[2])
	assert.Equal(t, 0, required[3])
	for h := 4; h < 24; h++ {
		assert.Equal(t, 0, required[h], "missing hour %d must stay zero", h)
	}
}
