package domain

import "time"

// ForecastEntry is one hour of the externally produced staffing forecast.
// Staff is fractional; the planner's normalizer turns it into an integer
// requirement.
type ForecastEntry struct {
	Hour  int     `json:"hour"`
	Staff float64 `json:"staff"`
}

// Forecast is one stored planning day: exactly 24 entries, hours 0..23.
type Forecast struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	DayDate   time.Time       `json:"dayDate"`
	IsWeekend bool            `json:"isWeekend"`
	Entries   []ForecastEntry `json:"entries"`
	CreatedAt time.Time       `json:"createdAt"`
	Version   int32           `json:"-"`
}
