package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/planner"
)

func TestRecommendNoShortage(t *testing.T) {
	assert.Nil(t, planner.Recommend([24]int{}, 4))
}

func TestRecommend(t *testing.T) {
	tests := map[string]struct {
		shortage      map[int]int
		ptLengthHours int
		expected      domain.HireRecommendation
	}{
		"single_hour_peak": {
			// the peak dominates the total-hours bound: three concurrent
			// agents are missing at hour 7, so three FT hires is the floor
			shortage:      map[int]int{7: 3},
			ptLengthHours: 4,
			expected: domain.HireRecommendation{
				TotalShort:   3,
				PeakShort:    3,
				MinFT8:       3,
				MinPTCurrent: 1,
				MinPT4:       1,
				MinPT6:       1,
				Mixed:        domain.MixedHire{FT: 3, PT: 0, LengthHours: 4},
			},
		},
		"spread_shortage": {
			shortage:      map[int]int{8: 1, 9: 1, 10: 1, 11: 1, 12: 1, 13: 1, 14: 1, 15: 1, 16: 1, 17: 1},
			ptLengthHours: 6,
			expected: domain.HireRecommendation{
				TotalShort:   10,
				PeakShort:    1,
				MinFT8:       2,
				MinPTCurrent: 2,
				MinPT4:       3,
				MinPT6:       2,
				Mixed:        domain.MixedHire{FT: 1, PT: 1, LengthHours: 6},
			},
		},
		"tall_and_wide": {
			shortage:      map[int]int{9: 4, 10: 4, 11: 2, 12: 2},
			ptLengthHours: 4,
			expected: domain.HireRecommendation{
				TotalShort:   12,
				PeakShort:    4,
				MinFT8:       4,
				MinPTCurrent: 3,
				MinPT4:       3,
				MinPT6:       2,
				Mixed:        domain.MixedHire{FT: 4, PT: 0, LengthHours: 4},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := planner.Recommend(requiredWith(tc.shortage), tc.ptLengthHours)
			require.NotNil(t, rec)
			assert.Equal(t, tc.expected, *rec)
		})
	}
}
