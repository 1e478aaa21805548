package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/harness"
	"github.com/katalvlaran/lvsort/internal/config"
	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/sorting"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, harness.DefaultWorkers, cfg.Workers)
	assert.Equal(t, "text", cfg.Format)

	plan, err := cfg.Plan()
	require.NoError(t, err)
	assert.Equal(t, harness.DefaultPlan(), plan)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvsort.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
seed: 99
workers: 2
sizes: [10, 20]
shapes: [sorted, few-unique]
sort_algorithms: [quick, mergesort]
search_algorithms: [binary, rotated]
format: yaml
`), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, []int{10, 20}, cfg.Sizes)

	plan, err := cfg.Plan()
	require.NoError(t, err)
	assert.Equal(t, []sorting.Algorithm{sorting.Quick, sorting.Merge}, plan.SortAlgorithms)
	assert.Equal(t, []search.Algorithm{search.AlgoBinaryIterative, search.AlgoRotated}, plan.SearchAlgorithms)
	assert.Equal(t, 2*(2*2+2), plan.TrialCount())
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvsort.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
repeats = 5
sort_algorithms = ["heap"]
search_algorithms = []
format = "json"
`), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Repeats)
	assert.Equal(t, []string{"heap"}, cfg.SortAlgorithms)
	assert.Empty(t, cfg.SearchAlgorithms)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LVSORT_SEED", "1234")
	t.Setenv("LVSORT_SORT_ALGORITHMS", "bubble,heap")
	t.Setenv("LVSORT_SIZES", "5,50")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, []string{"bubble", "heap"}, cfg.SortAlgorithms)
	assert.Equal(t, []int{5, 50}, cfg.Sizes)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LVSORT_LOG_LEVEL":       "chatty",
		"LVSORT_WORKERS":         "0",
		"LVSORT_FORMAT":          "xml",
		"LVSORT_SORT_ALGORITHMS": "bogo",
		"LVSORT_SHAPES":          "zigzag",
		"LVSORT_REPEATS":         "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load(viper.New(), "")
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
