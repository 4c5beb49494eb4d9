package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dirplot-go/pkg/dirplot"
	"github.com/ukaji3/dirplot-go/pkg/dirplot/config"
)

// execute runs the CLI with a fresh command tree and default flag values.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	configPath, continueOnError, includeXLSX, skipHeader, dryRun, verbose, force = "", false, false, false, false, false, false
	cfg, logger = nil, nil

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	return cmd.Execute()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunWritesPDF(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("1,2,3,4\n5,6,7,8\n9,10,11,12\n"), 0644))

	require.NoError(t, execute(t, dir))
	assert.True(t, exists(filepath.Join(dir, "a.pdf")))
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("1,2\n"), 0644))

	require.NoError(t, execute(t, "--dry-run", dir))
	assert.False(t, exists(filepath.Join(dir, "a.pdf")))
}

func TestRunFailsOnMalformedInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("1,x\n"), 0644))

	err := execute(t, dir)
	assert.ErrorIs(t, err, dirplot.ErrParse)
	assert.False(t, exists(filepath.Join(dir, "bad.pdf")))
}

func TestRunContinueOnErrorFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("1,x\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.csv"), []byte("1,2\n"), 0644))

	err := execute(t, "--continue-on-error", dir)
	assert.ErrorIs(t, err, dirplot.ErrParse)
	assert.True(t, exists(filepath.Join(dir, "good.pdf")))
}

func TestRunEmptyDirectory(t *testing.T) {
	require.NoError(t, execute(t, t.TempDir()))
}

func TestRunMissingDirectory(t *testing.T) {
	err := execute(t, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, dirplot.ErrDiscovery)
}

func TestRunRejectsExtraArgs(t *testing.T) {
	assert.Error(t, execute(t, "a", "b"))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirplot.yaml")

	require.NoError(t, execute(t, "config", "init", path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	// Existing file is kept unless forced.
	assert.Error(t, execute(t, "config", "init", path))
	assert.NoError(t, execute(t, "config", "init", "--force", path))
}

func TestRunCLISyncsLoggerOnFailure(t *testing.T) {
	synced := 0
	orig := syncLogger
	syncLogger = func() { synced++ }
	t.Cleanup(func() { syncLogger = orig })

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), filepath.Join(t.TempDir(), "missing")})

	err := runCLI(cmd)
	assert.ErrorIs(t, err, dirplot.ErrDiscovery)
	assert.Equal(t, 1, synced)
}
