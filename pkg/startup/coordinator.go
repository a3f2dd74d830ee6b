package startup

import (
	"sync"

	"github.com/go-drift/firstframe/pkg/platform"
)

// showing identifies which artifact, if any, is on screen.
type showing int

const (
	showingNothing showing = iota
	showingSplash
	showingFrame
)

// Coordinator owns the process-wide "current startup artifact" state. At most
// one artifact exists at a time; hide and claim are idempotent. Artifacts are
// only touched from the UI-owning context, the mutex guards the bookkeeping
// against claim calls arriving from initialization goroutines.
type Coordinator struct {
	mu     sync.Mutex
	state  showing
	splash platform.Artifact
	frame  platform.Frame
	tracer Tracer
}

// NewCoordinator returns an idle coordinator. A nil tracer defaults to
// NopTracer.
func NewCoordinator(tracer Tracer) *Coordinator {
	if tracer == nil {
		tracer = NopTracer{}
	}
	return &Coordinator{tracer: tracer}
}

// ShowingSplash reports whether a splash surface is the current artifact.
func (c *Coordinator) ShowingSplash() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == showingSplash
}

// ShowingStandIn reports whether a stand-in frame is the current artifact.
func (c *Coordinator) ShowingStandIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == showingFrame
}

// adoptSplash records a freshly created splash surface. UI context only.
func (c *Coordinator) adoptSplash(a platform.Artifact) {
	c.mu.Lock()
	c.splash = a
	c.state = showingSplash
	c.mu.Unlock()
}

// adoptFrame records a freshly created stand-in frame. UI context only.
func (c *Coordinator) adoptFrame(f platform.Frame) {
	c.mu.Lock()
	c.frame = f
	c.state = showingFrame
	c.mu.Unlock()
}

// Hide hides and disposes the current artifact, if any. Idempotent: hiding
// twice, or hiding with nothing showing, is a no-op. Must run on the
// UI-owning context.
func (c *Coordinator) Hide() {
	c.mu.Lock()
	splash, frame := c.splash, c.frame
	hadAny := c.state != showingNothing
	c.splash, c.frame = nil, nil
	c.state = showingNothing
	c.mu.Unlock()

	if !hadAny {
		return
	}
	if splash != nil {
		splash.Hide()
		splash.Dispose()
	}
	if frame != nil {
		frame.Hide()
		frame.Dispose()
	}
	c.tracer.Instant(EventHidden)
}

// ClaimFrame atomically takes ownership of the stand-in frame so the real
// window subsystem can reuse it instead of creating a new native window.
// Exactly one caller wins; later claim or hide calls see nothing.
func (c *Coordinator) ClaimFrame() (platform.Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != showingFrame || c.frame == nil {
		return nil, false
	}
	f := c.frame
	c.frame = nil
	c.state = showingNothing
	return f, true
}

// HideOnFirstShow arranges for the current artifact to be hidden the moment w
// becomes visible, not before, so no empty gap appears between the
// placeholder and the real window. The listener removes itself after firing.
// A no-op when nothing is showing.
func (c *Coordinator) HideOnFirstShow(w platform.Window) {
	if w == nil {
		return
	}
	c.mu.Lock()
	active := c.state != showingNothing
	c.mu.Unlock()
	if !active {
		return
	}

	// The listener may fire during OnShown itself (the window is already
	// visible and the backend replays the event synchronously), before the
	// remove closure exists. The bookkeeping below covers both orders.
	var (
		hmu    sync.Mutex
		remove func()
		fired  bool
	)
	r := w.OnShown(func() {
		hmu.Lock()
		if fired {
			hmu.Unlock()
			return
		}
		fired = true
		rm := remove
		hmu.Unlock()

		c.Hide()
		if rm != nil {
			rm()
		}
	})

	hmu.Lock()
	remove = r
	firedEarly := fired
	hmu.Unlock()
	if firedEarly && r != nil {
		r()
	}
}
