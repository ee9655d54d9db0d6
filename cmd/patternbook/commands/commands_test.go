package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRoot(t *testing.T) (*CLI, string) {
	t.Helper()

	dir := t.TempDir()
	contentDir := filepath.Join(dir, "lectures")
	outDir := filepath.Join(dir, "site")
	require.NoError(t, os.MkdirAll(contentDir, 0o755))

	cfgPath := filepath.Join(dir, "patternbook.yaml")
	cfg := fmt.Sprintf(`site:
  title: Test Book
content:
  directory: %s
output:
  directory: %s
  clean: true
build:
  cache_path: %s
`, contentDir, outDir, filepath.Join(dir, "cache.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	return &CLI{Config: cfgPath}, dir
}

func TestNewCmd_ScaffoldsLectureWithUIDAndDraft(t *testing.T) {
	root, dir := testRoot(t)

	cmd := &NewCmd{Title: "Factory Method", Weight: 40, Tags: "creational"}
	require.NoError(t, cmd.Run(&Global{}, root))

	path := filepath.Join(dir, "lectures", "factory-method.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "title: Factory Method")
	require.Contains(t, string(content), "draft: true")
	require.Contains(t, string(content), "uid: ")

	// Refuses to clobber without --force.
	require.Error(t, cmd.Run(&Global{}, root))
	cmd.Force = true
	require.NoError(t, cmd.Run(&Global{}, root))
}

func TestBuildCmd_BuildsScaffoldedLecture(t *testing.T) {
	root, dir := testRoot(t)

	require.NoError(t, (&NewCmd{Title: "Observer", Weight: 10}).Run(&Global{}, root))

	build := &BuildCmd{Drafts: true, Verify: true}
	require.NoError(t, build.Run(&Global{}, root))

	page, err := os.ReadFile(filepath.Join(dir, "site", "observer", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "<h1>Observer</h1>")
}

func TestBuildCmd_SkipsDraftsByDefault(t *testing.T) {
	root, dir := testRoot(t)

	require.NoError(t, (&NewCmd{Title: "Observer"}).Run(&Global{}, root))
	require.NoError(t, (&BuildCmd{}).Run(&Global{}, root))

	_, err := os.Stat(filepath.Join(dir, "site", "observer"))
	require.True(t, os.IsNotExist(err))
}

func TestInitCmd_WritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()
	root := &CLI{Config: filepath.Join(dir, "patternbook.yaml")}

	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	require.Error(t, (&InitCmd{}).Run(&Global{}, root))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, root))

	_, err := loadConfig(root)
	require.NoError(t, err)
}

func TestLintCmd_FailsOnErrorsAndFixesUIDs(t *testing.T) {
	root, dir := testRoot(t)
	lecturePath := filepath.Join(dir, "lectures", "proxy.md")
	require.NoError(t, os.WriteFile(lecturePath, []byte("---\ntitle: Proxy\n---\nSee [gone](missing.md).\n"), 0o644))

	lint := &LintCmd{Format: "text"}
	err := lint.Run(&Global{}, root) // broken link is error-level
	require.Error(t, err)

	fix := &LintCmd{Format: "text", Fix: true, Quiet: true}
	// Still fails on the broken link, but inserts the uid.
	require.Error(t, fix.Run(&Global{}, root))

	content, err := os.ReadFile(lecturePath)
	require.NoError(t, err)
	require.Contains(t, string(content), "uid: ")
}
