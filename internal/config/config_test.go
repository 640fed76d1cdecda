package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty working directory so no stray
// careerfit.yaml or .env is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Catalog)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.Dir)
}

func TestLoad_ConfigFileInWorkingDir(t *testing.T) {
	dir := inTempDir(t)
	data := "log:\n  level: debug\n  format: json\noutput:\n  format: markdown\ncatalog: ./questions.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careerfit.yaml"), []byte(data), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "./questions.json", cfg.Catalog)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: JSON\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	dir := inTempDir(t)

	_, err := Load(viper.New(), filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careerfit.yaml"), []byte("log:\n  level: debug\n"), 0o644))
	t.Setenv("CAREERFIT_LOG_LEVEL", "warn")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CAREERFIT_OUTPUT_FORMAT=markdown\n"), 0o644))
	t.Setenv("CAREERFIT_OUTPUT_FORMAT", "")
	os.Unsetenv("CAREERFIT_OUTPUT_FORMAT")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := inTempDir(t)
	data := "log:\n  level: loud\n  format: xml\noutput:\n  format: pdf\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careerfit.yaml"), []byte(data), 0o644))

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `log.level "loud"`)
	assert.Contains(t, msg, `log.format "xml"`)
	assert.Contains(t, msg, `output.format "pdf"`)
}

func TestLoad_BoundFlagWins(t *testing.T) {
	inTempDir(t)
	t.Setenv("CAREERFIT_LOG_LEVEL", "warn")

	v := viper.New()
	v.Set(KeyLogLevel, "error")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}
