package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dirplot-go/pkg/dirplot"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Empty(t, cfg.Dir)
	assert.False(t, cfg.ContinueOnError)
	assert.Equal(t, dirplot.DefaultOptions(), cfg.Options())

	d, err := cfg.Debounce()
	require.NoError(t, err)
	assert.Equal(t, dirplot.DefaultDebounce, d)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirplot.yaml")
	data := `
dir: measurements
continue_on_error: true
include_xlsx: true
log_level: debug
watch:
  debounce: 1s
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "measurements", cfg.Dir)
	assert.False(t, cfg.SkipHeader)

	opts := cfg.Options()
	assert.True(t, opts.ContinueOnError)
	assert.True(t, opts.IncludeXLSX)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	d, err := cfg.Debounce()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"syntax.yaml":   "dir: [unterminated",
		"level.yaml":    "log_level: loud",
		"debounce.yaml": "watch:\n  debounce: soon",
		"negative.yaml": "watch:\n  debounce: -1s",
	}

	for name, data := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirplot.yaml")

	cfg := DefaultConfig()
	cfg.SkipHeader = true
	cfg.Watch.Debounce = "2s"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
