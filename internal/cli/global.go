package cli

import (
	"context"
	"fmt"
	"math"
	"os"

	api "github.com/layoutlab/warehouse-analytics/api/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/handlers/v1alpha1/mappers"
	"github.com/layoutlab/warehouse-analytics/internal/handlers/validator"
	"github.com/layoutlab/warehouse-analytics/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"
)

// GlobalOptions are the evaluation inputs shared by every command that runs the engine.
type GlobalOptions struct {
	LiveMetricsFile            string
	StoreCount                 int
	DailyOrders                int
	ImplementationCostPerStore float64
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		StoreCount:                 analytics.DefaultStoreCount,
		DailyOrders:                analytics.DefaultDailyOrders,
		ImplementationCostPerStore: analytics.DefaultImplementationCostPerStore,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.LiveMetricsFile, "live-metrics", "l", o.LiveMetricsFile, "Path to a JSON or YAML file with live metrics. Defaults are used when omitted.")
	fs.IntVar(&o.StoreCount, "store-count", o.StoreCount, "Number of stores in the fleet")
	fs.IntVar(&o.DailyOrders, "daily-orders", o.DailyOrders, "Orders per store per day")
	fs.Float64Var(&o.ImplementationCostPerStore, "implementation-cost", o.ImplementationCostPerStore, "Rollout cost per store")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.StoreCount <= 0 {
		return fmt.Errorf("store count must be positive")
	}
	if o.DailyOrders <= 0 {
		return fmt.Errorf("daily orders must be positive")
	}
	if o.ImplementationCostPerStore < 0 || math.IsNaN(o.ImplementationCostPerStore) || math.IsInf(o.ImplementationCostPerStore, 0) {
		return fmt.Errorf("implementation cost must be a non-negative number")
	}
	return nil
}

// Service builds the analytics service for the configured inputs.
func (o *GlobalOptions) Service() *service.AnalyticsService {
	engine := analytics.NewEngine(analytics.WithImplementationCostPerStore(o.ImplementationCostPerStore))
	return service.NewAnalyticsService(engine, analytics.Inputs{
		StoreCount:  o.StoreCount,
		DailyOrders: o.DailyOrders,
	})
}

// Request loads the live metrics file, if any, into an evaluation request.
func (o *GlobalOptions) Request(ctx context.Context) (service.AnalyticsRequest, error) {
	if o.LiveMetricsFile == "" {
		return service.AnalyticsRequest{}, nil
	}

	data, err := os.ReadFile(o.LiveMetricsFile)
	if err != nil {
		return service.AnalyticsRequest{}, fmt.Errorf("reading live metrics: %w", err)
	}

	var live api.LiveMetrics
	if err := yaml.UnmarshalStrict(data, &live); err != nil {
		return service.AnalyticsRequest{}, fmt.Errorf("parsing live metrics %s: %w", o.LiveMetricsFile, err)
	}

	v := validator.NewValidator().Register(validator.NewAnalyticsValidationRules()...)
	if err := v.Struct(live); err != nil {
		return service.AnalyticsRequest{}, fmt.Errorf("invalid live metrics: %w", err)
	}

	return service.AnalyticsRequest{Live: mappers.LiveMetricsFromApi(&live)}, nil
}
