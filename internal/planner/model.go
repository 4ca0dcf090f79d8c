package planner

import "github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"

// Strategy selects the order in which the greedy loop attempts the two shift
// classes. It is a closed set; anything unrecognized resolves to StrategyAuto.
type Strategy string

const (
	StrategyAuto    Strategy = "auto"
	StrategyFTFirst Strategy = "ft_first"
	StrategyPTFirst Strategy = "pt_first"
	StrategyMixed   Strategy = "mixed"
)

// Full-time shifts have a fixed length; part-time length comes from the
// parameters.
const ftLengthHours = 8

// Parameters drives one planning run.
type Parameters struct {
	CapFT         int     // hourly concurrency ceiling, full-time
	CapPT         int     // hourly concurrency ceiling, part-time
	TotalFT       int     // daily shift-count ceiling, full-time
	TotalPT       int     // daily shift-count ceiling, part-time
	Strategy      Strategy
	MixedFTShare  float64 // target FT share in [0,1], only for StrategyMixed
	PTLengthHours int     // 4 or 6
	IsWeekend     bool    // drives the class order of StrategyAuto
}

// state holds the mutable working arrays of a single run. Nothing in here is
// shared: every Plan call owns its own state, so independent runs are safe to
// execute in parallel.
type state struct {
	deficit   [24]int
	covFT     [24]int
	covPT     [24]int
	placedFT  int
	placedPT  int
	windowsFT []domain.ShiftWindow
	windowsPT []domain.ShiftWindow
}
