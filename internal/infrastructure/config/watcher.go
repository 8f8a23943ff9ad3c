package configinfra

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

// DefaultDebounce is the window within which filesystem events for the
// watched paths collapse into a single reload. Editors commonly write a
// file several times per save (truncate then write, or rename over),
// and each burst should trigger one reload.
const DefaultDebounce = 250 * time.Millisecond

// WatcherState tracks the watcher lifecycle.
type WatcherState int32

const (
	StateIdle WatcherState = iota
	StateWatching
	StateStopping
	StateStopped
)

func (s WatcherState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWatching:
		return "watching"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// WatcherOptions configure a Watcher.
type WatcherOptions struct {
	// Paths are explicit watch targets. Empty means the candidate list
	// anchored at the resolver's working directory.
	Paths []string

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// Overrides is reapplied as the highest-precedence layer on every
	// reload, so values pinned by CLI flags survive file edits.
	Overrides configdomain.Layer
}

// Watcher monitors the configuration path set and re-resolves on
// change. Reloads run serially on the watcher's own goroutine; results
// go to the dispatcher, which swaps the shared snapshot on success and
// keeps the previous record on failure. The target set is fixed at
// Start.
type Watcher struct {
	resolver   *Resolver
	dispatcher *Dispatcher
	explicit   []string
	targets    map[string]struct{}
	debounce   time.Duration
	overrides  configdomain.Layer

	fsw      *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	state    atomic.Int32
	stopOnce sync.Once
}

// NewWatcher creates a watcher over the resolver's candidate paths, or
// over opts.Paths when given.
func NewWatcher(resolver *Resolver, dispatcher *Dispatcher, opts WatcherOptions) *Watcher {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		resolver:   resolver,
		dispatcher: dispatcher,
		explicit:   opts.Paths,
		debounce:   debounce,
		overrides:  opts.Overrides,
	}
}

// State returns the current lifecycle state.
func (w *Watcher) State() WatcherState {
	return WatcherState(w.state.Load())
}

// Start registers the filesystem subscriptions and launches the reload
// loop. It is an error to start a watcher twice. The parent directories
// of the targets are watched rather than the files themselves, so
// rename-replace saves and files created after startup are still seen.
func (w *Watcher) Start() error {
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StateWatching)) {
		return errors.New("config watcher already started")
	}

	targets, err := w.resolver.WatchTargets(w.explicit)
	if err != nil {
		w.state.Store(int32(StateStopped))
		return err
	}
	w.targets = make(map[string]struct{}, len(targets))
	for _, t := range targets {
		w.targets[t] = struct{}{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.state.Store(int32(StateStopped))
		return &configdomain.WatchSetupError{Err: err}
	}

	dirs := make(map[string]struct{})
	for _, t := range targets {
		dirs[filepath.Dir(t)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			w.state.Store(int32(StateStopped))
			return &configdomain.WatchSetupError{Path: dir, Err: err}
		}
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	w.wg.Add(1)
	go w.run()

	return nil
}

// Stop unsubscribes and waits for the reload loop, including any reload
// already in flight, to finish. After Stop returns no further snapshot
// writes or handler invocations occur. Calling Stop again is a no-op.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		if !w.state.CompareAndSwap(int32(StateWatching), int32(StateStopping)) {
			w.state.Store(int32(StateStopped))
			return
		}

		close(w.done)
		w.fsw.Close()
		w.wg.Wait()
		w.state.Store(int32(StateStopped))
	})
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time
	pending := make(map[string]struct{})

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			path := filepath.Clean(ev.Name)
			if _, watched := w.targets[path]; !watched {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			pending[path] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					<-timerC
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			changed := pending
			pending = make(map[string]struct{})
			w.reload(changed)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch-level errors are transient; the subscription stays up.

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// reload re-resolves after a debounced burst. A single surviving
// changed file loads directly; otherwise the candidate search reruns,
// which also covers removal of the active file.
func (w *Watcher) reload(changed map[string]struct{}) {
	var res configdomain.Resolution
	var err error

	if path, ok := soleExisting(changed); ok {
		res, err = w.resolver.LoadFromFile(path)
	} else {
		res, err = w.resolver.LoadFromCandidatePaths(w.explicit...)
	}

	if err != nil {
		w.dispatcher.ReloadFailed(err)
		return
	}

	if !w.overrides.IsEmpty() {
		res = res.Apply(w.overrides)
	}
	w.dispatcher.ReloadSucceeded(res)
}

func soleExisting(changed map[string]struct{}) (string, bool) {
	if len(changed) != 1 {
		return "", false
	}
	for path := range changed {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
