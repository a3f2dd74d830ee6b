package startup

import (
	fferrors "github.com/go-drift/firstframe/pkg/errors"
	"github.com/go-drift/firstframe/pkg/platform"
)

// ShowAction materializes the chosen artifact. Everything it needs — image
// bytes or geometry, color, and state — is captured ahead of time off the UI
// thread, so running it on the UI-owning context is as fast and flicker-free
// as possible. Exactly one of splash or frame is set; consumed exactly once.
type ShowAction struct {
	splash   *platform.SplashConfig
	frame    *platform.FrameConfig
	consumed bool
}

// Splash reports whether this action will show a splash surface.
func (a *ShowAction) Splash() bool { return a != nil && a.splash != nil }

// StandIn reports whether this action will show a stand-in frame.
func (a *ShowAction) StandIn() bool { return a != nil && a.frame != nil }

// Run executes the action on the calling context, which must be the UI-owning
// one. Construction failures are reported and leave the coordinator idle; a
// second Run is a no-op.
func (a *ShowAction) Run(backend platform.WindowBackend, coord *Coordinator) {
	defer fferrors.Recover("startup.ShowAction.Run")
	if a == nil || backend == nil || coord == nil || a.consumed {
		return
	}
	a.consumed = true

	switch {
	case a.frame != nil:
		f, err := backend.CreateFrame(*a.frame)
		if err != nil {
			fferrors.Report(&fferrors.StartupError{
				Op:   "startup.showStandIn",
				Kind: fferrors.KindWindow,
				Err:  err,
			})
			return
		}
		coord.adoptFrame(f)
	case a.splash != nil:
		s, err := backend.CreateSplash(*a.splash)
		if err != nil {
			fferrors.Report(&fferrors.StartupError{
				Op:   "startup.showSplash",
				Kind: fferrors.KindWindow,
				Err:  err,
			})
			return
		}
		coord.adoptSplash(s)
	}
}
