// Package watch re-triggers a batch run whenever one of its input files
// changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when a non-positive debounce is given.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors a fixed set of files using fsnotify. Directories are
// watched instead of the files themselves so that editors which replace a
// file by rename are still observed.
type Watcher struct {
	Changes <-chan string // Read-only external channel of changed paths

	changes  chan string
	done     chan struct{}
	files    map[string]bool
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      *slog.Logger
}

// New creates a watcher for files. Events for one file closer together than
// debounce are coalesced into a single change.
func New(files []string, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		done:     make(chan struct{}),
		files:    make(map[string]bool, len(files)),
		debounce: debounce,
		watcher:  fw,
		log:      log,
	}
	ch := make(chan string, 16)
	w.Changes, w.changes = ch, ch

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Start begins delivering changes.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending[abs] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) emit(file string) {
	select {
	case w.changes <- file:
	default:
		// a change is already queued
	}
}

// Loop calls run once, then again after every change, until ctx is done.
// A failing run is logged and does not stop the loop.
func Loop(ctx context.Context, w *Watcher, log *slog.Logger, run func(context.Context) error) error {
	if log == nil {
		log = slog.Default()
	}
	w.Start()
	defer w.Stop()

	if err := run(ctx); err != nil {
		log.Error("run failed", "err", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case file, ok := <-w.Changes:
			if !ok {
				return nil
			}
			log.Info("input changed, re-running", "file", file)
			if err := run(ctx); err != nil {
				log.Error("run failed", "err", err)
			}
		}
	}
}
