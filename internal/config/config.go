// Package config loads lvsort settings from defaults, an optional config file
// and LVSORT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsort/harness"
	"github.com/katalvlaran/lvsort/internal/logger"
	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/seqgen"
	"github.com/katalvlaran/lvsort/sorting"
)

// EnvPrefix is the prefix of every environment variable read by Load,
// e.g. LVSORT_SEED or LVSORT_SORT_ALGORITHMS=quick,heap.
const EnvPrefix = "LVSORT"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of the CLI. Lists accept comma-separated strings
// when set from the environment.
type Config struct {
	LogLevel         string   `mapstructure:"log_level" yaml:"log_level"`
	Seed             int64    `mapstructure:"seed" yaml:"seed"`
	Workers          int      `mapstructure:"workers" yaml:"workers"`
	Repeats          int      `mapstructure:"repeats" yaml:"repeats"`
	SearchesPerTrial int      `mapstructure:"searches_per_trial" yaml:"searches_per_trial"`
	Sizes            []int    `mapstructure:"sizes" yaml:"sizes"`
	Shapes           []string `mapstructure:"shapes" yaml:"shapes"`
	SortAlgorithms   []string `mapstructure:"sort_algorithms" yaml:"sort_algorithms"`
	SearchAlgorithms []string `mapstructure:"search_algorithms" yaml:"search_algorithms"`
	Format           string   `mapstructure:"format" yaml:"format"`
	Output           string   `mapstructure:"output" yaml:"output"` // file path; empty means stdout
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	plan := harness.DefaultPlan()
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", int64(0))
	v.SetDefault("workers", harness.DefaultWorkers)
	v.SetDefault("repeats", plan.Repeats)
	v.SetDefault("searches_per_trial", plan.SearchesPerTrial)
	v.SetDefault("sizes", plan.Sizes)
	v.SetDefault("shapes", names(plan.Shapes))
	v.SetDefault("sort_algorithms", names(plan.SortAlgorithms))
	v.SetDefault("search_algorithms", names(plan.SearchAlgorithms))
	v.SetDefault("format", string(harness.FormatText))
	v.SetDefault("output", "")
}

// Load reads configuration into a validated Config. path may be empty; when
// set, the file type is taken from its extension (yaml, yml, toml, json).
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := harness.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	plan, err := c.Plan()
	if err != nil {
		return err
	}
	if err = plan.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Plan converts the named shapes and algorithms into a harness.Plan.
func (c *Config) Plan() (harness.Plan, error) {
	plan := harness.Plan{
		Sizes:            c.Sizes,
		Repeats:          c.Repeats,
		SearchesPerTrial: c.SearchesPerTrial,
	}
	for _, name := range c.Shapes {
		s, err := seqgen.ParseShape(name)
		if err != nil {
			return harness.Plan{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		plan.Shapes = append(plan.Shapes, s)
	}
	for _, name := range c.SortAlgorithms {
		a, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return harness.Plan{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		plan.SortAlgorithms = append(plan.SortAlgorithms, a)
	}
	for _, name := range c.SearchAlgorithms {
		a, err := search.ParseAlgorithm(name)
		if err != nil {
			return harness.Plan{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		plan.SearchAlgorithms = append(plan.SearchAlgorithms, a)
	}
	return plan, nil
}

func names[T fmt.Stringer](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}
