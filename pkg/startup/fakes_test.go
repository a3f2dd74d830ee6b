package startup

import (
	"sync"

	fferrors "github.com/go-drift/firstframe/pkg/errors"
	"github.com/go-drift/firstframe/pkg/platform"
)

// fakeArtifact counts lifecycle calls.
type fakeArtifact struct {
	hidden   int
	disposed int
}

func (a *fakeArtifact) Hide()    { a.hidden++ }
func (a *fakeArtifact) Dispose() { a.disposed++ }

// fakeFrame is a fakeArtifact that satisfies platform.Frame and remembers its
// config.
type fakeFrame struct {
	fakeArtifact
	cfg platform.FrameConfig
}

// fakeBackend records every surface it creates.
type fakeBackend struct {
	splashes   []*fakeArtifact
	splashCfgs []platform.SplashConfig
	frames     []*fakeFrame

	failSplash error
	failFrame  error
}

func (b *fakeBackend) CreateSplash(cfg platform.SplashConfig) (platform.Artifact, error) {
	if b.failSplash != nil {
		return nil, b.failSplash
	}
	a := &fakeArtifact{}
	b.splashes = append(b.splashes, a)
	b.splashCfgs = append(b.splashCfgs, cfg)
	return a, nil
}

func (b *fakeBackend) CreateFrame(cfg platform.FrameConfig) (platform.Frame, error) {
	if b.failFrame != nil {
		return nil, b.failFrame
	}
	f := &fakeFrame{cfg: cfg}
	b.frames = append(b.frames, f)
	return f, nil
}

// created returns the total surfaces constructed, of either kind.
func (b *fakeBackend) created() int {
	return len(b.splashes) + len(b.frames)
}

// fakeWindow emits shown events to registered listeners.
type fakeWindow struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

func (w *fakeWindow) OnShown(fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.listeners == nil {
		w.listeners = make(map[int]func())
	}
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// show fires the shown event, as a native window does when mapped.
func (w *fakeWindow) show() {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.listeners))
	for _, fn := range w.listeners {
		fns = append(fns, fn)
	}
	w.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// eagerWindow is already visible when listeners register: it replays the
// shown event synchronously inside OnShown, before the caller has the remove
// closure in hand.
type eagerWindow struct {
	fakeWindow
}

func (w *eagerWindow) OnShown(fn func()) func() {
	remove := w.fakeWindow.OnShown(fn)
	fn()
	return remove
}

func (w *fakeWindow) listenerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// captureHandler collects reported startup errors for assertions.
type captureHandler struct {
	mu      sync.Mutex
	reports []*fferrors.StartupError
}

func (h *captureHandler) HandleError(err *fferrors.StartupError) {
	h.mu.Lock()
	h.reports = append(h.reports, err)
	h.mu.Unlock()
}

func (h *captureHandler) HandlePanic(*fferrors.PanicError) {}

func (h *captureHandler) kinds() []fferrors.ErrorKind {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]fferrors.ErrorKind, len(h.reports))
	for i, r := range h.reports {
		out[i] = r.Kind
	}
	return out
}

// recordingTracer captures phase names in order.
type recordingTracer struct {
	mu     sync.Mutex
	phases []string
}

func (t *recordingTracer) Start(name string) Span {
	t.mu.Lock()
	t.phases = append(t.phases, name)
	t.mu.Unlock()
	return nopSpan{}
}

func (t *recordingTracer) Instant(name string) {
	t.mu.Lock()
	t.phases = append(t.phases, name)
	t.mu.Unlock()
}

func (t *recordingTracer) has(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.phases {
		if p == name {
			return true
		}
	}
	return false
}
