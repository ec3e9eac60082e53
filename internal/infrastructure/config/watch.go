package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// CatalogWatcher reports changes to catalog files under <dir>/bugs
type CatalogWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
}

// NewCatalogWatcher starts watching dir/bugs. Call Close when done.
func NewCatalogWatcher(dir string) (*CatalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	bugsDir := filepath.Join(dir, "bugs")
	if err := watcher.Add(bugsDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", bugsDir, err)
	}

	return &CatalogWatcher{watcher: watcher, dir: dir}, nil
}

// Run calls onChange with the catalog name each time a catalog file is
// written or created. It blocks until ctx is done or the watcher is closed.
func (w *CatalogWatcher) Run(ctx context.Context, onChange func(name string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if name, ok := catalogName(event.Name); ok {
				onChange(name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("failed to watch %s: %w", w.dir, err)
		}
	}
}

// Close stops watching
func (w *CatalogWatcher) Close() error {
	return w.watcher.Close()
}

// catalogName strips the directory and a known catalog extension
func catalogName(file string) (string, bool) {
	ext := filepath.Ext(file)
	for _, known := range catalogExts {
		if ext == known {
			return strings.TrimSuffix(filepath.Base(file), ext), true
		}
	}
	return "", false
}
