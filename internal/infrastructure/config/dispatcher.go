package configinfra

import (
	"sync"
	"sync/atomic"

	configdomain "tram.dev/cli/internal/core/domain/config"
	configports "tram.dev/cli/internal/core/ports/config"
)

// Dispatcher owns the shared configuration snapshot. The watcher's
// reload loop is the sole writer; any number of readers may call
// Current concurrently. Records are immutable, so a swap replaces the
// whole snapshot pointer and readers always see either the previous or
// the next record, never a mix.
type Dispatcher struct {
	current atomic.Pointer[configdomain.Resolution]

	// swapMu serializes writers. Decoding and merging happen on private
	// candidate records before publication, so the lock covers only the
	// pointer swap.
	swapMu sync.Mutex

	mu       sync.RWMutex
	handlers []configports.ChangeHandler
}

// NewDispatcher seeds the dispatcher with the initial resolution.
func NewDispatcher(initial configdomain.Resolution) *Dispatcher {
	d := &Dispatcher{}
	d.current.Store(&initial)
	return d
}

// Register adds a change handler. Handlers are invoked in registration
// order. Registration normally happens before the watcher starts;
// registering later is allowed and takes effect on the next reload.
func (d *Dispatcher) Register(h configports.ChangeHandler) {
	d.mu.Lock()
	d.handlers = append(d.handlers, h)
	d.mu.Unlock()
}

// Current returns the current record. It never blocks on a reload
// beyond the cost of an atomic pointer load.
func (d *Dispatcher) Current() configdomain.Record {
	return d.current.Load().Record
}

// CurrentResolution returns the full current snapshot including
// provenance and source path.
func (d *Dispatcher) CurrentResolution() configdomain.Resolution {
	return *d.current.Load()
}

// ReloadSucceeded atomically publishes the new resolution, then invokes
// every change handler with the new record, in registration order.
func (d *Dispatcher) ReloadSucceeded(res configdomain.Resolution) {
	d.swapMu.Lock()
	d.current.Store(&res)
	d.swapMu.Unlock()

	for _, h := range d.snapshotHandlers() {
		invoke(func() { h.OnReloadSuccess(res.Record) })
	}
}

// ReloadFailed leaves the current snapshot untouched and routes the
// error to every handler in registration order.
func (d *Dispatcher) ReloadFailed(err error) {
	for _, h := range d.snapshotHandlers() {
		invoke(func() { h.OnReloadFailure(err) })
	}
}

func (d *Dispatcher) snapshotHandlers() []configports.ChangeHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]configports.ChangeHandler(nil), d.handlers...)
}

// invoke isolates handler failures: a panicking handler must not stop
// the remaining handlers or corrupt the snapshot.
func invoke(f func()) {
	defer func() {
		_ = recover()
	}()
	f()
}
