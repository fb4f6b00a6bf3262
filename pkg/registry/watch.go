package registry

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	sigilio "github.com/matzehuels/sigil/pkg/io"
)

// reloadDelay debounces bursts of file events into one reload.
const reloadDelay = 200 * time.Millisecond

// Watch reloads reg from src whenever a symbol file under dir is created,
// written, removed or renamed, until ctx is cancelled. New directories are
// added to the watch list. A failed reload is logged and the previous
// symbols stay in place.
//
// onReload, if non-nil, is called after each successful reload.
func Watch(ctx context.Context, reg *Registry, src Source, dir string, logger *log.Logger, onReload func(count int)) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, dir); err != nil {
		return err
	}
	logger.Info("watcher: started", "root", dir)

	var timer *time.Timer
	var timerCh <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(reloadDelay)
			timerCh = timer.C
		} else {
			timer.Reset(reloadDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			if err := reg.Reload(ctx, src); err != nil {
				logger.Warn("watcher: reload failed", "error", err)
				continue
			}
			logger.Info("watcher: reloaded symbols", "count", reg.Len())
			if onReload != nil {
				onReload(reg.Len())
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed", "path", ev.Name, "error", addErr)
					}
					schedule()
					continue
				}
			}

			if !sigilio.IsSymbolFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("watcher: change", "path", ev.Name, "op", ev.Op.String())
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", "error", watchErr)
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
