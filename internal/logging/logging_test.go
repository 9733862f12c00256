package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/charmingruby/lazyseq/internal/logging"
)

func TestLevelSet(t *testing.T) {
	tests := map[string]logging.Level{
		"debug": logging.DEBUG,
		"INFO":  logging.INFO,
		"warn":  logging.WARN,
		"ERROR": logging.ERROR,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			var l logging.Level
			require.NoError(t, l.Set(in))
			assert.Equal(t, want, l)
		})
	}

	var l logging.Level
	require.ErrorIs(t, l.Set("loud"), logging.ErrUnknownLevel)
}

func TestLevelText(t *testing.T) {
	var l logging.Level
	require.NoError(t, l.UnmarshalText([]byte("warn")))
	assert.Equal(t, "warn", l.String())
	assert.Equal(t, "Level", l.Type())

	out, err := yaml.Marshal(map[string]logging.Level{"verbosity": logging.ERROR})
	require.NoError(t, err)
	assert.Equal(t, "verbosity: error\n", string(out))

	assert.Panics(t, func() { _ = logging.Level(42).String() })
}

func TestNewHonoursLevel(t *testing.T) {
	logger, err := logging.New(logging.WARN)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
