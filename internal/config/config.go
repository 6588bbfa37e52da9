package config

import (
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service   *svcConfig
	Analytics *analyticsConfig
}

type svcConfig struct {
	Address        string   `envconfig:"LAYOUT_ANALYTICS_ADDRESS" default:":3443"`
	MetricsAddress string   `envconfig:"LAYOUT_ANALYTICS_METRICS_ADDRESS" default:":8080"`
	LogLevel       string   `envconfig:"LAYOUT_ANALYTICS_LOG_LEVEL" default:"info"`
	AllowedOrigins []string `envconfig:"LAYOUT_ANALYTICS_ALLOWED_ORIGINS" default:"*"`
}

// analyticsConfig holds the fleet inputs used when a request does not carry its own.
type analyticsConfig struct {
	StoreCount                 int     `envconfig:"LAYOUT_ANALYTICS_STORE_COUNT" default:"4700"`
	DailyOrders                int     `envconfig:"LAYOUT_ANALYTICS_DAILY_ORDERS" default:"1000"`
	ImplementationCostPerStore float64 `envconfig:"LAYOUT_ANALYTICS_IMPLEMENTATION_COST_PER_STORE" default:"50000"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// Load reads a fresh configuration from the environment, bypassing the cached one.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Analytics.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects fleet inputs the engine cannot project with.
func (a *analyticsConfig) Validate() error {
	if a.StoreCount <= 0 {
		return fmt.Errorf("LAYOUT_ANALYTICS_STORE_COUNT must be positive, got %d", a.StoreCount)
	}
	if a.DailyOrders <= 0 {
		return fmt.Errorf("LAYOUT_ANALYTICS_DAILY_ORDERS must be positive, got %d", a.DailyOrders)
	}
	if a.ImplementationCostPerStore < 0 || math.IsNaN(a.ImplementationCostPerStore) || math.IsInf(a.ImplementationCostPerStore, 0) {
		return fmt.Errorf("LAYOUT_ANALYTICS_IMPLEMENTATION_COST_PER_STORE must be a non-negative number, got %v", a.ImplementationCostPerStore)
	}
	return nil
}
