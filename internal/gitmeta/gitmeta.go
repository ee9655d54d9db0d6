// Package gitmeta resolves per-file metadata from the surrounding git
// repository, currently the last-modified timestamp of lecture sources.
package gitmeta

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
)

// Resolver answers metadata questions against a single repository. A nil
// Resolver is valid and falls back to filesystem timestamps.
type Resolver struct {
	repo *git.Repository
	root string
}

// NewResolver opens the repository containing dir, searching parent
// directories for .git the way the git CLI does.
func NewResolver(dir string) (*Resolver, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository worktree: %w", err)
	}

	return &Resolver{repo: repo, root: wt.Filesystem.Root()}, nil
}

// LastModified returns the timestamp of the newest commit touching path.
// Uncommitted files, files outside the repository, and a nil receiver all
// fall back to the file's mtime.
func (r *Resolver) LastModified(path string) time.Time {
	if r != nil {
		if when, ok := r.commitTime(path); ok {
			return when
		}
	}
	if st, err := os.Stat(path); err == nil {
		return st.ModTime()
	}
	return time.Time{}
}

func (r *Resolver) commitTime(path string) (time.Time, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return time.Time{}, false
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return time.Time{}, false
	}
	rel = filepath.ToSlash(rel)

	iter, err := r.repo.Log(&git.LogOptions{FileName: &rel, Order: git.LogOrderCommitterTime})
	if err != nil {
		slog.Debug("git log failed", "path", rel, "error", err)
		return time.Time{}, false
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		return time.Time{}, false
	}
	return commit.Author.When, true
}
