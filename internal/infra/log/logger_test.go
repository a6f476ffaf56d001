package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"stayscape/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "stayscape"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("booking created", "bookingID", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "booking created", line["msg"])
	assert.Equal(t, "stayscape", line["service"])
	assert.EqualValues(t, 7, line["bookingID"])
}

func TestNew_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := New(Params{Config: cfg})

	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	for _, in := range []string{"", "INFO", "debug", "warning", "error"} {
		_, err := parseLogLevel(in)
		assert.NoError(t, err, in)
	}
}
