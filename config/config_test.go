package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LEAVE_DATA_PATH",
		"LEAVE_HTTP_ADDR",
		"LEAVE_LOG_LEVEL",
		"LEAVE_SEED_ON_MISSING",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "employee_data.json", cfg.DataPath)
	assert.Empty(t, cfg.HTTPAddr, "stdio is the default transport")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SeedOnMissing)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAVE_DATA_PATH", "/var/lib/leave/data.json")
	t.Setenv("LEAVE_HTTP_ADDR", ":8080")
	t.Setenv("LEAVE_LOG_LEVEL", "debug")
	t.Setenv("LEAVE_SEED_ON_MISSING", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/leave/data.json", cfg.DataPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SeedOnMissing)
}

func TestLoad_InvalidLogLevel_Rejected(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAVE_LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.ErrorContains(t, err, "verbose")
}

func TestLoad_UnparsableBool_FallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAVE_SEED_ON_MISSING", "definitely")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.SeedOnMissing, "unparsable booleans keep the default")
}
