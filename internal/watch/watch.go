// Package watch regenerates scaffolds when TypeScript sources change.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes directories for TypeScript source changes and
// invokes a callback per changed file. Generated test files,
// declaration files and node_modules are ignored.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *zap.Logger
	onChange func(path string)
}

// New creates a Watcher. onChange is called from the watch loop
// goroutine for every relevant source change.
func New(logger *zap.Logger, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{fsw: fsw, logger: logger, onChange: onChange}, nil
}

// Add registers a directory tree for watching. fsnotify watches are
// per-directory, so the tree is walked and every subdirectory added.
func (w *Watcher) Add(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		w.logger.Debug("watching directory", zap.String("dir", path))
		return w.fsw.Add(path)
	})
}

// Run processes events until ctx is canceled or the watcher closes.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !IsSource(event.Name) {
				continue
			}
			w.logger.Info("source changed", zap.String("file", event.Name))
			w.onChange(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// IsSource reports whether path is a TypeScript source worth
// generating scaffolds for: a .ts file that is not a declaration file
// and not itself a generated test document.
func IsSource(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".ts") {
		return false
	}
	switch {
	case strings.HasSuffix(base, ".d.ts"),
		strings.Contains(base, ".test."),
		strings.Contains(base, ".spec."):
		return false
	}
	return true
}
