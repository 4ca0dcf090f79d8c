package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/utils"
)

func fullDay() []domain.ForecastEntry {
	entries := make([]domain.ForecastEntry, 24)
	for h := 0; h < 24; h++ {
		entries[h] = domain.ForecastEntry{Hour: h, Staff: float64(h)}
	}
	return entries
}

func TestValidateForecastEntries(t *testing.T) {
	require.NoError(t, utils.ValidateForecastEntries(fullDay()))

	t.Run("wrong_count", func(t *testing.T) {
		err := utils.ValidateForecastEntries(fullDay()[:23])
		assert.ErrorContains(t, err, "exactly 24")
	})

	t.Run("duplicate_hour", func(t *testing.T) {
		entries := fullDay()
		entries[5].Hour = 4
		err := utils.ValidateForecastEntries(entries)
		assert.ErrorContains(t, err, "more than once")
	})

	t.Run("out_of_range_hour", func(t *testing.T) {
		entries := fullDay()
		entries[23].Hour = 24
		err := utils.ValidateForecastEntries(entries)
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("negative_staff_is_allowed", func(t *testing.T) {
		entries := fullDay()
		entries[3].Staff = -2.5
		assert.NoError(t, utils.ValidateForecastEntries(entries))
	})
}
