package logger_test

import (
	"bytes"
	"testing"

	"codeberg.org/mutker/bodyctl/internal/errors"
	"codeberg.org/mutker/bodyctl/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.LogLevel
	}{
		{"debug", logger.DebugLevel},
		{"INFO", logger.InfoLevel},
		{"warning", logger.WarnLevel},
		{" warn ", logger.WarnLevel},
		{"error", logger.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logger.ParseLevel("verbose")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, logger.WarnLevel, true)
	t.Cleanup(func() { logger.SetLogLevel(logger.WarnLevel) })

	logger.Debug().Msg("hidden")
	logger.Warn().Str("band", "Sobrepeso").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "Sobrepeso")
}

func TestErrorWithCode(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, logger.DebugLevel, true)
	t.Cleanup(func() { logger.SetLogLevel(logger.WarnLevel) })

	err := errors.New().WithMessage(errors.ErrInvalidInput, "weight must be greater than zero")
	logger.Default().ErrorWithCode(err).Msg("record failed")

	out := buf.String()
	assert.Contains(t, out, "invalid_input")
	assert.Contains(t, out, "weight must be greater than zero")
}

func TestErrorWithCodeLogsChain(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, logger.DebugLevel, true)
	t.Cleanup(func() { logger.SetLogLevel(logger.WarnLevel) })

	f := errors.New()
	err := f.Wrap(errors.ErrPipeline, f.New(errors.ErrNoData))
	logger.Default().ErrorWithCode(err).Msg("pipeline failed")

	out := buf.String()
	assert.Contains(t, out, "error_chain")
	assert.Contains(t, out, "no_data")
}
