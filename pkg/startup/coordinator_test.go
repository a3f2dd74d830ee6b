package startup

import "testing"

func TestHideSplashDisposesOnce(t *testing.T) {
	c := NewCoordinator(nil)
	a := &fakeArtifact{}
	c.adoptSplash(a)

	if !c.ShowingSplash() {
		t.Fatal("expected splash to be showing")
	}

	c.Hide()
	c.Hide()

	if a.hidden != 1 || a.disposed != 1 {
		t.Errorf("hidden=%d disposed=%d, want 1/1", a.hidden, a.disposed)
	}
	if c.ShowingSplash() || c.ShowingStandIn() {
		t.Error("coordinator should be idle after Hide")
	}
}

func TestHideOnIdleIsNoop(t *testing.T) {
	c := NewCoordinator(nil)
	c.Hide() // must not panic or change anything
	if c.ShowingSplash() || c.ShowingStandIn() {
		t.Error("coordinator should stay idle")
	}
}

func TestHideEmitsInstantEvent(t *testing.T) {
	tracer := &recordingTracer{}
	c := NewCoordinator(tracer)
	c.adoptSplash(&fakeArtifact{})

	c.Hide()
	if !tracer.has(EventHidden) {
		t.Error("Hide should emit the hidden event")
	}

	tracer.phases = nil
	c.Hide()
	if tracer.has(EventHidden) {
		t.Error("idempotent Hide should not emit again")
	}
}

func TestClaimFrameIsOneShot(t *testing.T) {
	c := NewCoordinator(nil)
	f := &fakeFrame{}
	c.adoptFrame(f)

	got, ok := c.ClaimFrame()
	if !ok || got != f {
		t.Fatal("first claim should win the frame")
	}
	if _, ok := c.ClaimFrame(); ok {
		t.Error("second claim should find nothing")
	}

	// The claimant now owns the frame; Hide must not dispose it.
	c.Hide()
	if f.disposed != 0 {
		t.Error("claimed frame must not be disposed by Hide")
	}
}

func TestHideThenClaim(t *testing.T) {
	c := NewCoordinator(nil)
	f := &fakeFrame{}
	c.adoptFrame(f)

	c.Hide()
	if f.hidden != 1 || f.disposed != 1 {
		t.Errorf("hidden=%d disposed=%d, want 1/1", f.hidden, f.disposed)
	}
	if _, ok := c.ClaimFrame(); ok {
		t.Error("claim after hide should find nothing")
	}
}

func TestClaimFrameIgnoresSplash(t *testing.T) {
	c := NewCoordinator(nil)
	c.adoptSplash(&fakeArtifact{})
	if _, ok := c.ClaimFrame(); ok {
		t.Error("a splash is not claimable")
	}
}

func TestHideOnFirstShow(t *testing.T) {
	c := NewCoordinator(nil)
	a := &fakeArtifact{}
	c.adoptSplash(a)

	w := &fakeWindow{}
	c.HideOnFirstShow(w)

	if a.hidden != 0 {
		t.Fatal("artifact must stay visible until the real window appears")
	}

	w.show()
	if a.hidden != 1 || a.disposed != 1 {
		t.Errorf("hidden=%d disposed=%d, want 1/1", a.hidden, a.disposed)
	}
	if w.listenerCount() != 0 {
		t.Error("listener should remove itself after firing")
	}

	// Further shown events are harmless.
	w.show()
	if a.hidden != 1 {
		t.Error("one-shot listener fired twice")
	}
}

func TestHideOnFirstShowAlreadyVisibleWindow(t *testing.T) {
	c := NewCoordinator(nil)
	a := &fakeArtifact{}
	c.adoptSplash(a)

	w := &eagerWindow{}
	c.HideOnFirstShow(w)

	if a.hidden != 1 || a.disposed != 1 {
		t.Errorf("hidden=%d disposed=%d, want 1/1", a.hidden, a.disposed)
	}
	if w.listenerCount() != 0 {
		t.Error("listener must remove itself even when the event fires during registration")
	}

	w.show()
	if a.hidden != 1 {
		t.Error("one-shot listener fired twice")
	}
}

func TestHideOnFirstShowIdle(t *testing.T) {
	c := NewCoordinator(nil)
	w := &fakeWindow{}
	c.HideOnFirstShow(w)
	if w.listenerCount() != 0 {
		t.Error("no listener should be registered when nothing is showing")
	}
}

func TestHideOnFirstShowNilWindow(t *testing.T) {
	c := NewCoordinator(nil)
	c.adoptSplash(&fakeArtifact{})
	c.HideOnFirstShow(nil) // must not panic
}
