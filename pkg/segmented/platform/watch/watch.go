// Package watch reloads a config file when it changes on disk and reports
// its appearance setting as an AppearanceSource.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/config"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/atomic"
)

// Options configures a Watcher.
type Options struct {
	// Debounce is how long the file must stay quiet before it is reloaded.
	Debounce time.Duration

	// Dispatch runs subscriber callbacks. Hosts pass a function that hands
	// the callback to their UI goroutine. Defaults to calling it inline on
	// the watcher goroutine.
	Dispatch func(func())
}

// Watcher follows one config file. Editors that save by renaming a new file
// into place are handled by watching the parent directory.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce time.Duration
	dispatch func(func())
	logger   *slog.Logger

	appearance *atomic.Int32
	reloads    *atomic.Int64
	closed     *atomic.Bool

	mu          sync.Mutex
	cfg         config.Config
	timer       *time.Timer
	subscribers map[int]func(segmented.Appearance)
	onConfig    map[int]func(config.Config)
	next        int
}

// New loads path and prepares to watch it. Call Start to begin watching.
func New(path string, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = constants.DefaultWatchDebounce
	}
	if opts.Dispatch == nil {
		opts.Dispatch = func(fn func()) { fn() }
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	cfg, err := config.Load(absPath)
	if err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, segmented.NewInfrastructureError("create_watcher", err)
	}
	if err := fs.Add(filepath.Dir(absPath)); err != nil {
		fs.Close()
		return nil, segmented.NewInfrastructureError("watch_config", err)
	}

	return &Watcher{
		path:        absPath,
		fs:          fs,
		debounce:    opts.Debounce,
		dispatch:    opts.Dispatch,
		logger:      internal.GetInternalLogger(),
		appearance:  atomic.NewInt32(int32(cfg.AppearanceValue())),
		reloads:     atomic.NewInt64(0),
		closed:      atomic.NewBool(false),
		cfg:         cfg,
		subscribers: make(map[int]func(segmented.Appearance)),
		onConfig:    make(map[int]func(config.Config)),
	}, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Appearance returns the appearance of the last successfully loaded config.
func (w *Watcher) Appearance() segmented.Appearance {
	return segmented.Appearance(w.appearance.Load())
}

// Config returns the last successfully loaded config.
func (w *Watcher) Config() config.Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// Reloads returns how many times the file was reloaded successfully.
func (w *Watcher) Reloads() int64 {
	return w.reloads.Load()
}

// Subscribe registers fn for appearance changes.
func (w *Watcher) Subscribe(fn func(segmented.Appearance)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++
	w.subscribers[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subscribers, id)
	}
}

// OnConfig registers fn to receive every successfully reloaded config.
func (w *Watcher) OnConfig(fn func(config.Config)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++
	w.onConfig[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.onConfig, id)
	}
}

// Start begins watching on a background goroutine.
func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	if w.closed.Load() {
		return
	}

	cfg, err := config.Load(w.path)
	if err != nil {
		// Half-written files are common mid-save; keep the last good config.
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	w.reloads.Inc()

	next := cfg.AppearanceValue()
	prev := segmented.Appearance(w.appearance.Swap(int32(next)))

	w.mu.Lock()
	w.cfg = cfg
	appearanceFns := make([]func(segmented.Appearance), 0, len(w.subscribers))
	configFns := make([]func(config.Config), 0, len(w.onConfig))
	for i := 0; i < w.next; i++ {
		if fn, ok := w.subscribers[i]; ok {
			appearanceFns = append(appearanceFns, fn)
		}
		if fn, ok := w.onConfig[i]; ok {
			configFns = append(configFns, fn)
		}
	}
	w.mu.Unlock()

	w.logger.Debug("config reloaded", "path", w.path, "appearance", next.String())

	for _, fn := range configFns {
		fn := fn
		w.dispatch(func() { fn(cfg) })
	}
	if next == prev {
		return
	}
	for _, fn := range appearanceFns {
		fn := fn
		w.dispatch(func() { fn(next) })
	}
}

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return segmented.ErrClosed
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.fs.Close()
}
