// Package platform defines the contracts between the startup pipeline and the
// host application: the UI-owning task queue, the display topology service,
// the native window backend, and base path resolution. The library never links
// a concrete windowing stack; embedders supply these.
package platform

import "sync"

// Dispatcher schedules callbacks on the UI-owning context.
type Dispatcher interface {
	// Dispatch schedules fn to run on the UI thread. Returns false if the
	// callback could not be scheduled (nil fn or shut-down target).
	Dispatch(fn func()) bool
}

// DispatchFunc adapts a plain function to the Dispatcher interface, for
// embedders that already own a main-loop scheduling primitive.
type DispatchFunc func(fn func())

func (d DispatchFunc) Dispatch(fn func()) bool {
	if d == nil || fn == nil {
		return false
	}
	d(fn)
	return true
}

var (
	registryMu sync.RWMutex
	registered Dispatcher
)

// RegisterDispatch sets the process-wide dispatcher used by the package-level
// Dispatch. This should be called once by the embedding engine during
// initialization; pass nil to clear it.
func RegisterDispatch(d Dispatcher) {
	registryMu.Lock()
	registered = d
	registryMu.Unlock()
}

// Dispatch schedules a callback on the process-wide registered dispatcher.
// Returns true if the callback was successfully scheduled, false if no
// dispatcher is registered or the callback is nil.
func Dispatch(fn func()) bool {
	registryMu.RLock()
	d := registered
	registryMu.RUnlock()
	if d == nil || fn == nil {
		return false
	}
	return d.Dispatch(fn)
}

// Queue is a single-threaded task queue for UI work. All visual artifact
// construction, mutation, and disposal must run through one Queue (or an
// equivalent embedder-provided Dispatcher); that confinement is what makes the
// current-artifact state single-writer without locks around the artifacts
// themselves.
type Queue struct {
	mu     sync.Mutex
	tasks  []func()
	wake   chan struct{}
	closed bool
}

// NewQueue returns an empty queue. Call Run from the thread that owns the UI,
// or drive it manually with Pump in tests.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Dispatch schedules fn to run on the queue's owning thread.
// Returns false if the queue is closed or fn is nil.
func (q *Queue) Dispatch(fn func()) bool {
	if fn == nil {
		return false
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Pump runs all currently queued tasks on the calling goroutine and returns
// how many ran. Tasks queued by the tasks themselves are picked up in the
// same call.
func (q *Queue) Pump() int {
	ran := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return ran
		}
		tasks := q.tasks
		q.tasks = nil
		q.mu.Unlock()

		for _, fn := range tasks {
			fn()
			ran++
		}
	}
}

// Run blocks on the calling goroutine, executing dispatched tasks until Close
// is called. The calling goroutine becomes the UI-owning context.
func (q *Queue) Run() {
	for {
		q.Pump()
		q.mu.Lock()
		closed := q.closed
		empty := len(q.tasks) == 0
		q.mu.Unlock()
		if closed && empty {
			return
		}
		if empty {
			<-q.wake
		}
	}
}

// Close stops the queue. Already-queued tasks still run; new dispatches are
// rejected.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}
