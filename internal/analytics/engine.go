package analytics

import (
	"errors"
	"fmt"
	"math"
)

// DefaultRankLimit is the number of layouts shown in the performance ranking.
const DefaultRankLimit = 5

// Engine evaluates live metrics against its configuration tables and assembles a Report.
// The tables are fixed at construction, so a single Engine can serve concurrent evaluations.
type Engine struct {
	layouts                    []LayoutProfile
	seasons                    []SeasonalProfile
	carbon                     []CarbonContributor
	stages                     []RolloutStage
	implementationCostPerStore float64
	rankLimit                  int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLayoutProfiles replaces the layout table. An empty table is ignored and the built-in one is kept.
// WithLayoutProfiles panics on duplicate layout names, as the names identify rows in every output.
func WithLayoutProfiles(profiles ...LayoutProfile) EngineOption {
	return func(e *Engine) {
		if len(profiles) == 0 {
			return
		}
		seen := make(map[string]struct{}, len(profiles))
		for _, p := range profiles {
			if _, ok := seen[p.Name]; ok {
				panic(fmt.Sprintf("analytics: layout %q declared twice", p.Name))
			}
			seen[p.Name] = struct{}{}
		}
		e.layouts = append([]LayoutProfile(nil), profiles...)
	}
}

// WithSeasonalProfiles replaces the seasonal table. An empty table is ignored.
func WithSeasonalProfiles(profiles ...SeasonalProfile) EngineOption {
	return func(e *Engine) {
		if len(profiles) == 0 {
			return
		}
		e.seasons = append([]SeasonalProfile(nil), profiles...)
	}
}

// WithCarbonContributors replaces the carbon breakdown weights. An empty list is ignored.
func WithCarbonContributors(contributors ...CarbonContributor) EngineOption {
	return func(e *Engine) {
		if len(contributors) == 0 {
			return
		}
		e.carbon = append([]CarbonContributor(nil), contributors...)
	}
}

// WithRolloutStages replaces the deployment schedule. An empty schedule is ignored.
func WithRolloutStages(stages ...RolloutStage) EngineOption {
	return func(e *Engine) {
		if len(stages) == 0 {
			return
		}
		e.stages = append([]RolloutStage(nil), stages...)
	}
}

// WithImplementationCostPerStore sets the per-store rollout cost.
// Zero is accepted and yields an undefined ROI. Negative or non-finite costs panic.
func WithImplementationCostPerStore(cost float64) EngineOption {
	return func(e *Engine) {
		if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
			panic(fmt.Sprintf("analytics: implementation cost per store must be a non-negative number, got %v", cost))
		}
		e.implementationCostPerStore = cost
	}
}

// WithRankLimit sets how many layouts the ranking keeps. Non-positive values keep them all.
func WithRankLimit(limit int) EngineOption {
	return func(e *Engine) {
		e.rankLimit = limit
	}
}

// NewEngine creates an Engine with the built-in tables, overridable by options.
func NewEngine(opts ...EngineOption) *Engine {
	e := Engine{
		layouts:                    DefaultLayoutProfiles(),
		seasons:                    DefaultSeasonalProfiles(),
		carbon:                     DefaultCarbonContributors(),
		stages:                     DefaultRolloutStages(),
		implementationCostPerStore: DefaultImplementationCostPerStore,
		rankLimit:                  DefaultRankLimit,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return &e
}

// ImplementationCostPerStore returns the per-store rollout cost the engine projects ROI with.
func (e *Engine) ImplementationCostPerStore() float64 {
	return e.implementationCostPerStore
}

// Evaluate runs the full derivation for one snapshot of inputs.
// An undefined ROI is reported inside the Report, not as an error.
func (e *Engine) Evaluate(live *LiveMetrics, in Inputs) (*Report, error) {
	base := Normalize(live)
	layouts := buildLayoutScenarios(base, e.layouts)
	seasons := buildSeasonalPeriods(base, e.seasons)

	roi := ROIOutcome{Defined: true}
	projection, err := ComputeROI(layouts, in.StoreCount, e.implementationCostPerStore)
	if err != nil {
		var undefined *ErrRoiUndefined
		if !errors.As(err, &undefined) {
			return nil, err
		}
		roi.Defined = false
		roi.Reason = err.Error()
	}
	roi.Projection = projection

	rollout, err := SelectBestLayout(layouts, in.StoreCount)
	if err != nil {
		return nil, err
	}

	return &Report{
		Base:            base,
		Inputs:          in,
		Layouts:         layouts,
		RankedLayouts:   RankLayouts(layouts, e.rankLimit),
		SeasonalPeriods: seasons,
		ROI:             roi,
		Rollout:         rollout,
		Carbon:          BreakdownCarbon(base.CarbonReductionPercent, e.carbon),
		KeyMetrics:      SummarizeKeyMetrics(base, layouts, in),
		Plan:            PlanRollout(e.stages, in.StoreCount, roi),
		Recommendations: recommend(rollout, e.seasons, in),
	}, nil
}

func recommend(rollout RolloutImpact, seasons []SeasonalProfile, in Inputs) []string {
	out := []string{
		fmt.Sprintf("Implement %s across all stores for %s annual savings",
			rollout.BestLayout.Name, FormatCurrency(rollout.PotentialAnnualSavings)),
		fmt.Sprintf("Reduce carbon footprint by %s across %s stores",
			FormatPercent(rollout.PotentialCarbonReductionPercent, 0), FormatCount(in.StoreCount)),
	}

	var peak *SeasonalProfile
	for i := range seasons {
		if peak == nil || seasons[i].EfficiencyUpliftPercent > peak.EfficiencyUpliftPercent {
			peak = &seasons[i]
		}
	}
	if peak != nil && peak.EfficiencyUpliftPercent > 0 {
		out = append(out, fmt.Sprintf("Increase %s efficiency by %s with optimized routing",
			peak.Name, FormatPercent(peak.EfficiencyUpliftPercent, 0)))
	}

	return out
}
