package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Matching.MaxResults)
	assert.Equal(t, 0.3, cfg.Matching.MinScore)
	assert.Equal(t, "default", cfg.Snapshot.Project)
}

func TestMatchingOptions(t *testing.T) {
	m := Matching{MaxResults: 3, MinScore: 0.7, ExcludeSameShow: true}
	opts := m.Options()
	assert.Equal(t, apptype.MatchOptions{MaxResults: 3, MinScore: 0.7, ExcludeSameShow: true}, opts)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Matching.MaxResults)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crimeweb.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[matching]
max_results = 10
min_score = 0.5
exclude_same_show = true

[snapshot]
path = "/data/episodes.json"
watch = true

[logging]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Matching.MaxResults)
	assert.Equal(t, 0.5, cfg.Matching.MinScore)
	assert.True(t, cfg.Matching.ExcludeSameShow)
	assert.True(t, cfg.Snapshot.Watch)
	assert.Equal(t, slog.LevelDebug, ParseLevel(cfg.Logging.Level))
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crimeweb.toml")
	require.NoError(t, os.WriteFile(path, []byte("[matching]\nmin_score = 1.5\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[snapshot]\nwatch = true\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("not toml at all ["), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CRIMEWEB_MAX_RESULTS", "3")
	t.Setenv("CRIMEWEB_MIN_SCORE", "0.7")
	t.Setenv("CRIMEWEB_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Matching.MaxResults)
	assert.Equal(t, 0.7, cfg.Matching.MinScore)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	logger.Info("hello", "k", "v")

	assert.Contains(t, stderr.String(), "hello")
	assert.Contains(t, file.String(), `"msg":"hello"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
