package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patternbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Patterns\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "lectures", cfg.Content.Directory)
	require.Equal(t, "./site", cfg.Output.Directory)
	require.True(t, cfg.Output.Clean)
	require.Equal(t, ":8080", cfg.Serve.Addr)
	require.Equal(t, ".patternbook/cache.db", cfg.Build.CachePath)
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("PB_TITLE", "GoF Lectures")
	path := writeConfig(t, "site:\n  title: ${PB_TITLE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "GoF Lectures", cfg.Site.Title)
}

func TestValidate_RejectsRelativeBaseURL(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Patterns\n  base_url: /patternbook\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base_url")
}

func TestValidate_RejectsRedirectWithoutLeadingSlash(t *testing.T) {
	path := writeConfig(t, `
site:
  title: Patterns
redirects:
  - from: factory/
    to: /factory-method/
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "redirects[0]")
}

func TestValidate_RejectsTooFrequentRebuild(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Patterns\nserve:\n  rebuild_every: 5s\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestRebuildInterval_ParsesConfiguredDuration(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Patterns\nserve:\n  rebuild_every: 30m\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, cfg.RebuildInterval())
}

func TestWriteStarter_RefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternbook.yaml")

	require.NoError(t, WriteStarter(path, false))
	require.Error(t, WriteStarter(path, false))
	require.NoError(t, WriteStarter(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Design Patterns", cfg.Site.Title)
}
