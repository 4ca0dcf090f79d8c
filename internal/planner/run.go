package planner

import "github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"

// Options is the caller-facing configuration of one planning run. TotalFT and
// TotalPT left nil default to the matching caps: a day's headcount must never
// imply more concurrent agents than the caps allow.
type Options struct {
	CapFT                int
	CapPT                int
	TotalFT              *int
	TotalPT              *int
	Strategy             Strategy
	MixedFTPercent       int
	PTLengthHours        int
	WeekendPTLengthHours *int
	LunchMinutes         int
}

// Run executes the whole pipeline for one day: normalize the forecast, place
// shifts, derive hire recommendations from the residual shortage, and unroll
// the roster. All intermediate state is discarded; only the artifacts escape.
func Run(entries []domain.ForecastEntry, isWeekend bool, opts *Options) *domain.PlanArtifacts {
	required := NormalizeRequirement(entries)
	cfg := Resolve(opts, isWeekend)

	params := &Parameters{
		CapFT:         cfg.CapFT,
		CapPT:         cfg.CapPT,
		TotalFT:       cfg.TotalFT,
		TotalPT:       cfg.TotalPT,
		Strategy:      Strategy(cfg.Strategy),
		MixedFTShare:  float64(cfg.MixedFTPercent) / 100,
		PTLengthHours: cfg.PTLengthHours,
		IsWeekend:     cfg.IsWeekend,
	}

	result := Plan(required, params)
	hires := Recommend(result.Shortage, cfg.PTLengthHours)
	roster := BuildRoster(result.ShiftsFT, result.ShiftsPT, cfg.LunchMinutes)

	return &domain.PlanArtifacts{
		Config:   cfg,
		Required: required,
		Result:   *result,
		Hires:    hires,
		Roster:   roster,
	}
}

// Resolve fills in the resolved parameter set: negative numbers are treated
// as zero, unknown strategies fall back to auto, the part-time length
// switches to the weekend override when one is configured and the day is a
// weekend, and blank totals default to the caps.
func Resolve(opts *Options, isWeekend bool) domain.PlanConfig {
	cfg := domain.PlanConfig{
		CapFT:          max(0, opts.CapFT),
		CapPT:          max(0, opts.CapPT),
		MixedFTPercent: opts.MixedFTPercent,
		LunchMinutes:   max(0, opts.LunchMinutes),
		IsWeekend:      isWeekend,
	}

	cfg.TotalFT = cfg.CapFT
	if opts.TotalFT != nil {
		cfg.TotalFT = max(0, *opts.TotalFT)
	}
	cfg.TotalPT = cfg.CapPT
	if opts.TotalPT != nil {
		cfg.TotalPT = max(0, *opts.TotalPT)
	}

	switch opts.Strategy {
	case StrategyFTFirst, StrategyPTFirst, StrategyMixed:
		cfg.Strategy = string(opts.Strategy)
	default:
		cfg.Strategy = string(StrategyAuto)
	}

	cfg.PTLengthHours = opts.PTLengthHours
	if isWeekend && opts.WeekendPTLengthHours != nil {
		cfg.PTLengthHours = *opts.WeekendPTLengthHours
	}
	if cfg.PTLengthHours != 6 {
		cfg.PTLengthHours = 4
	}

	return cfg
}
