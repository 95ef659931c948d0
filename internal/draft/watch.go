package draft

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// CheckResult is one validation pass over a changed draft file. Err is nil
// when the draft would be accepted for submission.
type CheckResult struct {
	Name string
	Err  error
}

// debounceDelay coalesces the event bursts editors produce for one save.
const debounceDelay = 200 * time.Millisecond

// Watch observes the drafts directory and re-validates a draft each time its
// file is written, until ctx is cancelled. cb receives one CheckResult per
// settled change.
func Watch(ctx context.Context, store *FileStore, logger *slog.Logger, cb func(CheckResult)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(store.Dir()); err != nil {
		return err
	}
	logger.Info("watcher: started", slog.String("dir", store.Dir()))

	pending := make(map[string]struct{})
	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func(name string) {
		pending[name] = struct{}{}
		if timer == nil {
			timer = time.NewTimer(debounceDelay)
			timerCh = timer.C
		} else {
			timer.Reset(debounceDelay)
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
			for name := range pending {
				delete(pending, name)
				d, loadErr := store.Load(name)
				if loadErr != nil {
					cb(CheckResult{Name: name, Err: loadErr})
					continue
				}
				cb(CheckResult{Name: name, Err: d.Validate()})
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			base := filepath.Base(ev.Name)
			if !strings.HasSuffix(base, fileExt) || strings.HasPrefix(base, ".") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				schedule(strings.TrimSuffix(base, fileExt))
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
