package loggertest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvsort/internal/logger/loggertest"
)

func TestNew_Named(t *testing.T) {
	t.Parallel()

	lggr := loggertest.New(t).Named("harness").Named("sort")
	assert.Equal(t, "harness.sort", lggr.Name())
	lggr.Debugw("visible in -v output", "n", 3)
}

func TestNewObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := loggertest.NewObserved(t, zapcore.InfoLevel)
	lggr.Debugw("dropped", "n", 1)
	lggr.With("run_id", "r1").Infow("kept", "algo", "quick")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "quick", entry.ContextMap()["algo"])
	assert.Equal(t, "r1", entry.ContextMap()["run_id"])
}
