package codegen

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/glbind/internal/logger"
)

// Watch generates once and then regenerates whenever a Go source or
// shader file in a watched package changes, until ctx is done. Bursts of
// events are coalesced for debounce. Generation errors are logged and
// watching continues.
func Watch(ctx context.Context, cfg Config, debounce time.Duration, patterns ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	w := &watch{cfg: cfg, watcher: watcher, dirs: make(map[string]bool)}
	w.regenerate(patterns)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("change detected", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.regenerate(patterns)
		}
	}
}

type watch struct {
	cfg     Config
	watcher *fsnotify.Watcher
	dirs    map[string]bool
}

// relevant reports whether event touches a file generation depends on.
// Writes of the generated files themselves are ignored.
func (w *watch) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	if base == w.cfg.output() || base == w.cfg.testOutput() {
		return false
	}
	switch filepath.Ext(base) {
	case ".go", ".vert", ".frag":
		return !strings.HasPrefix(base, ".")
	}
	return false
}

func (w *watch) regenerate(patterns []string) {
	start := time.Now()
	units, err := Generate(w.cfg, patterns...)
	written := 0
	for _, u := range units {
		if u.Written {
			written++
		}
		w.add(filepath.Dir(u.Path))
		for _, p := range u.Programs {
			for _, src := range []string{p.Vertex.File, p.Fragment.File} {
				if src != "" {
					w.add(filepath.Join(filepath.Dir(u.Path), filepath.Dir(src)))
				}
			}
		}
	}
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return
	}
	logger.Info("regenerated",
		zap.Int("files", len(units)),
		zap.Int("written", written),
		zap.Duration("took", time.Since(start)))
}

func (w *watch) add(dir string) {
	if w.dirs[dir] {
		return
	}
	if err := w.watcher.Add(dir); err != nil {
		logger.Warn("cannot watch directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	w.dirs[dir] = true
	logger.Debug("watching", zap.String("dir", dir))
}
