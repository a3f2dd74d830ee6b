package startup

import "sync"

// Signal is a one-shot readiness broadcast. Initialization tasks Set it once;
// any number of waiters select on Done.
type Signal struct {
	once sync.Once
	done chan struct{}
}

// NewSignal returns an unset signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Set marks the signal satisfied. Only the first call has any effect.
func (s *Signal) Set() {
	s.once.Do(func() { close(s.done) })
}

// Done is closed once the signal is set.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// IsSet reports whether Set has been called.
func (s *Signal) IsSet() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
