package domain

import "time"

type ShiftType string

const (
	ShiftFullTime ShiftType = "FT"
	ShiftPartTime ShiftType = "PT"
)

// ShiftWindow is a merged block of identical shifts: Count agents all working
// the hours [Start, End). Windows never cross midnight.
type ShiftWindow struct {
	Type  ShiftType `json:"type"`
	Start int       `json:"start"`
	End   int       `json:"end"`
	Count int       `json:"count"`
}

// PlanResult is the planner's output for one day. Coverage[h] is the sum of
// counts of all windows covering hour h; Shortage and Excess are derived from
// it against the requirement.
type PlanResult struct {
	ShiftsFT      []ShiftWindow `json:"shiftsFT"`
	ShiftsPT      []ShiftWindow `json:"shiftsPT"`
	Coverage      [24]int       `json:"coverage"`
	Shortage      [24]int       `json:"shortage"`
	Excess        [24]int       `json:"excess"`
	MaxConcurrent int           `json:"maxConcurrent"`
}

// MixedHire is one concrete way of covering the residual shortage with a
// combination of full-time and part-time hires.
type MixedHire struct {
	FT          int `json:"ft"`
	PT          int `json:"pt"`
	LengthHours int `json:"lengthHours"`
}

// HireRecommendation carries heuristic lower bounds on additional hires
// needed to absorb the residual shortage. These are total-hours bounds, not
// verified against the planner's caps.
type HireRecommendation struct {
	TotalShort   int       `json:"totalShort"`
	PeakShort    int       `json:"peakShort"`
	MinFT8       int       `json:"minFT8"`
	MinPTCurrent int       `json:"minPTCurrent"`
	MinPT4       int       `json:"minPT4"`
	MinPT6       int       `json:"minPT6"`
	Mixed        MixedHire `json:"mixed"`
}

// RosterEntry is one employee unrolled from a shift window. Lunch times are
// minutes since midnight, snapped to the half-hour grid inside the shift.
type RosterEntry struct {
	EmployeeID int       `json:"employeeID"`
	Type       ShiftType `json:"type"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	LunchStart int       `json:"lunchStart"`
	LunchEnd   int       `json:"lunchEnd"`
	Hours      int       `json:"hours"`
}

// PlanConfig is the fully resolved parameter set of one planning run: caps,
// totals (defaulted to the caps when the caller left them blank), strategy
// and lengths, with the weekend part-time override already applied.
type PlanConfig struct {
	CapFT          int    `json:"capFT"`
	CapPT          int    `json:"capPT"`
	TotalFT        int    `json:"totalFT"`
	TotalPT        int    `json:"totalPT"`
	Strategy       string `json:"strategy"`
	MixedFTPercent int    `json:"mixedFTPercent"`
	PTLengthHours  int    `json:"ptLengthHours"`
	LunchMinutes   int    `json:"lunchMinutes"`
	IsWeekend      bool   `json:"isWeekend"`
}

// PlanArtifacts aggregates everything one planning run produces for
// downstream consumers.
type PlanArtifacts struct {
	Config   PlanConfig          `json:"config"`
	Required [24]int             `json:"required"`
	Result   PlanResult          `json:"result"`
	Hires    *HireRecommendation `json:"hires"`
	Roster   []RosterEntry       `json:"roster"`
}

// SchedulePlan is a persisted planning run against a stored forecast.
type SchedulePlan struct {
	ID         int64         `json:"id"`
	ForecastID int64         `json:"forecastID"`
	Name       string        `json:"name"`
	Artifacts  PlanArtifacts `json:"artifacts"`
	CreatedAt  time.Time     `json:"createdAt"`
	Version    int32         `json:"-"`
}
