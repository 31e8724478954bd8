package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/welltris/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, zerolog.InfoLevel)

	logger.Debug().Msg("hidden")
	logger.Info().Str("round", "r1").Msg("round started")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"round":"r1"`)
	assert.Contains(t, buf.String(), `"time":`)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welltris.log")

	logger, closer, err := logging.Open(path, "info")
	require.NoError(t, err)
	logger.Info().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	_, closer, err = logging.Open("", "info")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	_, _, err = logging.Open(path, "loud")
	assert.Error(t, err)
}
