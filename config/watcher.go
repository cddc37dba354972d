package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

var logger *slog.Logger

func init() {
	logger = slog.Default().WithGroup("config")
}

// SetLogger replaces the package logger.
func SetLogger(log *slog.Logger) {
	logger = log.WithGroup("config")
}

// Watcher reloads a config file when it changes on disk. Changes are
// debounced so a save that touches the file several times triggers a
// single reload. Reload failures are logged and the previous options
// stay in effect.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload func(Options)

	fsw    *fsnotify.Watcher
	timer  *time.Timer
	mu     sync.Mutex
	done   chan struct{}
	closed bool
}

// NewWatcher watches path and calls onReload with the freshly loaded
// options after each debounced change. The parent directory is
// watched so editors that replace the file by rename are seen too.
func NewWatcher(path string, debounce time.Duration, onReload func(Options)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		onReload: onReload,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", "path", w.path, "error", err)
		case <-w.done:
			return
		}
	}
}

// schedule arms or extends the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	opts, err := Load(w.path)
	if err != nil {
		logger.Warn("reload failed, keeping previous options", "path", w.path, "error", err)
		return
	}
	logger.Info("config reloaded", "path", w.path)
	w.onReload(opts)
}

// Close stops watching. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	return w.fsw.Close()
}
