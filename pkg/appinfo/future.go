package appinfo

import "sync"

// Future is a one-shot asynchronous result for the product descriptor. The
// decision engine waits on Done before reading the descriptor, so metadata
// loading can run concurrently with UI theme setup.
type Future struct {
	once sync.Once
	done chan struct{}
	info *Info
	err  error
}

// NewFuture returns an unresolved future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// LoadAsync starts loading the descriptor at path on its own goroutine.
func LoadAsync(path string) *Future {
	f := NewFuture()
	go func() {
		f.Resolve(Load(path))
	}()
	return f
}

// Resolved returns a future already carrying info. Useful when the embedder
// has the descriptor in hand.
func Resolved(info *Info) *Future {
	f := NewFuture()
	f.Resolve(info, nil)
	return f
}

// Resolve completes the future. Only the first call has any effect.
func (f *Future) Resolve(info *Info, err error) {
	f.once.Do(func() {
		f.info = info
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Get returns the result. It must only be called after Done is closed.
func (f *Future) Get() (*Info, error) {
	return f.info, f.err
}
