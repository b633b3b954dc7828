package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Log.Source)
	assert.Equal(t, 2015, cfg.BaseYear)
	assert.Empty(t, cfg.Report)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 200*time.Millisecond, cfg.WatchDebounce)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COSTAR_BASE_YEAR", "2020")
	t.Setenv("COSTAR_LOG_LEVEL", "debug")
	t.Setenv("COSTAR_WATCH_DEBOUNCE", "1s")

	v := viper.New()
	require.NoError(t, Setup(v, writeFile(t, "log:\n  format: json\n")))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 2020, cfg.BaseYear)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
}

func TestSetup_ConfigFile(t *testing.T) {
	path := writeFile(t, "base_year: 1999\nreport: out.toml\nlog:\n  source: true\n")

	v := viper.New()
	require.NoError(t, Setup(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 1999, cfg.BaseYear)
	assert.Equal(t, "out.toml", cfg.Report)
	assert.True(t, cfg.Log.Source)
}

func TestSetup_MissingExplicitFile(t *testing.T) {
	err := Setup(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSetup_NoDefaultFileIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.NoError(t, Setup(viper.New(), ""))
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("log.format", "xml")
	_, err := Load(v)
	assert.ErrorIs(t, err, ErrInvalid)

	v = viper.New()
	v.Set("log.level", "loud")
	_, err = Load(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "costar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}
