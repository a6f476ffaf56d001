package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
env:
  serviceName: stayscape
secretKey:
  access: test-secret
booking:
  conflictPolicy: all
  cleaningFee: 50
  serviceFeeRate: 0.12
cache:
  localTTL: 1m
  memcachedHosts: []
`

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, minimalYAML)
	t.Setenv("BOOKING_CONFLICTPOLICY", "ignore_cancelled")
	t.Setenv("CACHE_MEMCACHEDHOSTS", "cache-a:11211,cache-b:11211")
	t.Setenv("CACHE_LOCALTTL", "30s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "ignore_cancelled", cfg.Booking.ConflictPolicy)
	assert.Equal(t, []string{"cache-a:11211", "cache-b:11211"}, cfg.Cache.MemcachedHosts)
	assert.Equal(t, 30*time.Second, cfg.Cache.LocalTTL)
	assert.Equal(t, 50, cfg.Booking.CleaningFee)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")

	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "all", cfg.Booking.ConflictPolicy)
	assert.Equal(t, 50, cfg.Booking.CleaningFee)
	assert.InDelta(t, 0.12, cfg.Booking.ServiceFeeRate, 1e-9)
	assert.Equal(t, 1, cfg.Review.MinRating)
	assert.Equal(t, 10, cfg.Review.MaxRating)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.NotNil(t, cfg.Events)
	assert.NotNil(t, cfg.QRCode)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Storage.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Storage.Driver = StorageDriverPostgres
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Review.MinRating, cfg.Review.MaxRating = 5, 1
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.SecretKey.Access = " "
	assert.Error(t, cfg.Validate())
}
