package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownCarbon_Defaults(t *testing.T) {
	t.Parallel()
	breakdown := BreakdownCarbon(48, DefaultCarbonContributors())

	require.Len(t, breakdown, 3)
	assert.Equal(t, "Reduced Travel", breakdown[0].Name)
	assert.InDelta(t, 45, breakdown[0].SharePercent, 1e-9)
	assert.InDelta(t, 21.6, breakdown[0].ReductionPercent, 1e-9)
	assert.InDelta(t, 30, breakdown[1].SharePercent, 1e-9)
	assert.InDelta(t, 14.4, breakdown[1].ReductionPercent, 1e-9)
	assert.InDelta(t, 25, breakdown[2].SharePercent, 1e-9)
	assert.InDelta(t, 12, breakdown[2].ReductionPercent, 1e-9)

	total := 0.0
	for _, c := range breakdown {
		total += c.ReductionPercent
	}
	assert.InDelta(t, 48, total, 1e-9)
}

func TestBreakdownCarbon_ZeroWeights(t *testing.T) {
	t.Parallel()
	breakdown := BreakdownCarbon(48, []CarbonContributor{{Name: "a"}, {Name: "b"}})

	for _, c := range breakdown {
		assert.Zero(t, c.SharePercent)
		assert.Zero(t, c.ReductionPercent)
	}
}

func TestPlanRollout(t *testing.T) {
	t.Parallel()
	roi := ROIOutcome{Defined: true, Projection: ROIProjection{TotalAnnualSavings: 1200, ImplementationCostTotal: 600}}

	t.Run("caps stages at the fleet size", func(t *testing.T) {
		plan := PlanRollout(DefaultRolloutStages(), 300, roi)
		require.Len(t, plan.Phases, 3)
		assert.Equal(t, 50, plan.Phases[0].Stores)
		assert.Equal(t, 300, plan.Phases[1].Stores)
		assert.Equal(t, 300, plan.Phases[2].Stores)
		assert.Equal(t, 7, plan.Phases[2].StartMonth)
		assert.Equal(t, 12, plan.Phases[2].EndMonth)
	})

	t.Run("computes break-even months", func(t *testing.T) {
		plan := PlanRollout(DefaultRolloutStages(), 4700, roi)
		require.NotNil(t, plan.BreakEvenMonths)
		assert.InDelta(t, 6, *plan.BreakEvenMonths, 1e-9)
	})

	t.Run("no break-even without savings", func(t *testing.T) {
		plan := PlanRollout(DefaultRolloutStages(), 4700, ROIOutcome{Defined: true, Projection: ROIProjection{ImplementationCostTotal: 600}})
		assert.Nil(t, plan.BreakEvenMonths)
	})

	t.Run("no break-even with undefined roi", func(t *testing.T) {
		plan := PlanRollout(DefaultRolloutStages(), 4700, ROIOutcome{Projection: ROIProjection{TotalAnnualSavings: 1200}})
		assert.Nil(t, plan.BreakEvenMonths)
	})
}

func TestSummarizeKeyMetrics_NoScenarios(t *testing.T) {
	t.Parallel()
	km := SummarizeKeyMetrics(DefaultBaseMetrics(), nil, Inputs{StoreCount: 2, DailyOrders: 3})
	assert.Zero(t, km.AverageEfficiency)
	assert.Equal(t, 6, km.DailyOrdersTotal)
	assert.Equal(t, 48.0, km.CarbonReductionPercent)
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()
	cases := map[float64]string{
		2573250000: "$2.6B",
		2315925000: "$2.3B",
		235000000:  "$235.0M",
		2250000:    "$2.3M",
		492750:     "$493K",
		1350:       "$1350.00",
		0:          "$0.00",
		-7300:      "-$7300.00",
		-3.5e9:     "-$3.5B",
	}
	for amount, want := range cases {
		assert.Equal(t, want, FormatCurrency(amount), "FormatCurrency(%v)", amount)
	}

	assert.Equal(t, NotAvailable, FormatCurrency(math.NaN()))
	assert.Equal(t, NotAvailable, FormatCurrency(math.Inf(1)))
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "886%", FormatPercent(885.5, 0))
	assert.Equal(t, "885.5%", FormatPercent(885.5, 1))
	assert.Equal(t, "48%", FormatPercent(48, 0))
	assert.Equal(t, NotAvailable, FormatPercent(math.NaN(), 1))
}

func TestFormatCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "4,700", FormatCount(4700))
	assert.Equal(t, "4,700,000", FormatCount(4700000))
	assert.Equal(t, "50", FormatCount(50))
}
