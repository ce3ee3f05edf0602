package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/marks/internal/config"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marks", "config.json")

	cfg, err := config.Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.Storage, "json")
	assert.Equal(t, cfg.FetchTimeoutSeconds, 5)
	assert.Equal(t, cfg.DataDir, filepath.Dir(path))

	_, err = os.Stat(path)
	assert.NilError(t, err, "config file should be created")
}

func TestLoad_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"storage":"bolt","checkConcurrency":0}`), 0644))

	cfg, err := config.Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.Storage, "bolt")
	assert.Equal(t, cfg.CheckConcurrency, 10)
	assert.Assert(t, cfg.FetchTitles)
	assert.DeepEqual(t, cfg.CheckExcludeDomains, []string{"github.com", "gitlab.com"})
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"storage":"json","logLevel":"info"}`), 0644))

	t.Setenv("MARKS_STORAGE", "sqlite")
	t.Setenv("MARKS_FETCH_TITLES", "false")
	t.Setenv("MARKS_CHECK_EXCLUDE_DOMAINS", "a.com,b.com")

	cfg, err := config.Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.Storage, "sqlite")
	assert.Equal(t, cfg.LogLevel, "info")
	assert.Assert(t, !cfg.FetchTitles)
	assert.DeepEqual(t, cfg.CheckExcludeDomains, []string{"a.com", "b.com"})
}

func TestLoad_BadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("MARKS_FETCH_TIMEOUT_SECONDS", "soon")

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "parse env")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := config.Load(path)
	assert.Assert(t, err != nil)
}
