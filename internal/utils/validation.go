package utils

import (
	"errors"
	"fmt"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
)

// ValidateForecastEntries enforces the shape of one forecast day: exactly one
// entry per hour 0..23, no gaps and no duplicates. Negative staffing figures
// are left alone here; the normalizer clamps them instead of rejecting the
// day.
func ValidateForecastEntries(entries []domain.ForecastEntry) error {
	if len(entries) != 24 {
		return errors.New("a forecast day must contain exactly 24 hourly entries")
	}

	var seen [24]bool
	for _, e := range entries {
		if e.Hour < 0 || e.Hour > 23 {
			return fmt.Errorf("hour %d is out of range", e.Hour)
		}
		if seen[e.Hour] {
			return fmt.Errorf("hour %d appears more than once", e.Hour)
		}
		seen[e.Hour] = true
	}

	return nil
}
