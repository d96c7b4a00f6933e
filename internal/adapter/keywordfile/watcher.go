// Package keywordfile loads the assistant keyword override file and reloads
// it whenever the file is written or replaced.
package keywordfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay lets editors finish writing before the file is read.
const settleDelay = 100 * time.Millisecond

// ApplyFunc receives the raw file content. A non-nil error is logged and the
// previous tables stay in effect.
type ApplyFunc func(raw []byte) error

// Watcher applies a keyword file at startup and on every change.
type Watcher struct {
	path  string
	apply ApplyFunc
	log   *slog.Logger
	delay time.Duration
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, apply ApplyFunc, log *slog.Logger) *Watcher {
	return &Watcher{
		path:  filepath.Clean(path),
		apply: apply,
		log:   log.With("component", "keywordfile", "path", path),
		delay: settleDelay,
	}
}

// Load reads the file once and applies it.
func (w *Watcher) Load() error {
	raw, err := os.ReadFile(w.path)
	if err != nil {
		return fmt.Errorf("read keyword file: %w", err)
	}
	if err := w.apply(raw); err != nil {
		return fmt.Errorf("apply keyword file: %w", err)
	}
	return nil
}

// Run watches the file's directory until ctx is done. The directory is
// watched rather than the file so that atomic renames are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching keyword file")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(w.delay):
			}

			if err := w.Load(); err != nil {
				w.log.Warn("keyword file ignored", slog.String("error", err.Error()))
				continue
			}
			w.log.Info("keyword file reloaded")

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("keyword watcher error", slog.String("error", err.Error()))
		}
	}
}
