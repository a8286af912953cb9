package rulecfg

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rmarchant/highlite/highlight"
)

// defaultDebounce coalesces the bursts of write events editors emit
// when saving a file.
const defaultDebounce = 100 * time.Millisecond

// ReloadHandler receives the freshly parsed rule sets after the watched
// file changed and loaded cleanly.
type ReloadHandler func(sets map[string]highlight.RuleSet)

// ErrorHandler receives load failures. The previously loaded rule sets
// stay in effect; a broken edit never tears down styling.
type ErrorHandler func(err error)

// Watcher reloads a rule-set file whenever it changes on disk.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	onReload ReloadHandler
	onError  ErrorHandler
	debounce time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last write
// before reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the handler for reload failures. Without one,
// failures are silently dropped and the previous rule sets remain.
func WithErrorHandler(fn ErrorHandler) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watch starts watching path and calls onReload with the parsed rule
// sets after every clean reload. The file is loaded once up front so
// callers start from a known-good state; a broken initial file is an
// error, matching the fail-fast contract for static configuration.
func Watch(path string, onReload ReloadHandler, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	sets, err := Load(abs)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		onReload: onReload,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	// Watch the directory rather than the file: editors that save via
	// rename would otherwise detach the watch.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	onReload(sets)

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops watching. No handler runs after Close returns.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()

	// Taking the lock waits out a reload the debounce timer has already
	// fired; the flag keeps later fires from reaching the handlers.
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

// loop consumes fsnotify events until closed.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
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
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(fmt.Errorf("watching %s: %w", w.path, err))
		}
	}
}

// scheduleReload arms (or re-arms) the debounce timer.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload re-parses the file and hands the result to the handler. It
// runs on the timer goroutine and holds the lock across the handler
// call, so Close cannot return mid-handler.
func (w *Watcher) reload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	sets, err := Load(w.path)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.onReload(sets)
}

// reportError forwards err to the error handler, if any.
func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
