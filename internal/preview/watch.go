package preview

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 300 * time.Millisecond

// newWatcher creates a recursive fsnotify watcher over the content
// directory.
func newWatcher(root string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addDirsRecursive(w, root); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		name := entry.Name()
		if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// debouncer coalesces bursts of filesystem events into single rebuild
// requests.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	out   chan struct{}
}

func newDebouncer() *debouncer {
	return &debouncer{out: make(chan struct{}, 1)}
}

// Trigger schedules a rebuild request after the debounce window; further
// triggers within the window reset it.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(debounceWindow, func() {
		select {
		case d.out <- struct{}{}:
		default:
		}
	})
}

// C yields one value per coalesced burst.
func (d *debouncer) C() <-chan struct{} { return d.out }

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// relevantEvent filters out editor noise the watcher reports.
func relevantEvent(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}
	return true
}
