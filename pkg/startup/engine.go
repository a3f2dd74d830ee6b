package startup

import (
	"context"
	"errors"
	"image"
	"sync/atomic"

	"github.com/go-drift/firstframe/pkg/appinfo"
	fferrors "github.com/go-drift/firstframe/pkg/errors"
	"github.com/go-drift/firstframe/pkg/framestate"
	"github.com/go-drift/firstframe/pkg/platform"
	"github.com/go-drift/firstframe/pkg/splashimage"
)

// Options configures the startup Engine. Paths, Displays, Backend, and
// Dispatcher come from the embedding application; the rest have defaults.
type Options struct {
	Paths      platform.PathProvider
	Displays   platform.DisplayService
	Backend    platform.WindowBackend
	Dispatcher platform.Dispatcher

	// Tracer receives named startup phases. Defaults to NopTracer.
	Tracer Tracer
	// StatePath overrides the persisted record location. Defaults to the
	// well-known file under Paths.
	StatePath string
	// LoadImage overrides splash image loading. Defaults to
	// splashimage.Load.
	LoadImage func(path string) (image.Image, error)
}

// Engine is the startup decision engine: it waits for the readiness signals,
// picks splash or stand-in frame, and schedules exactly one show on the
// UI-owning context.
type Engine struct {
	opts      Options
	coord     *Coordinator
	scheduled atomic.Bool
}

// NewEngine creates an engine with an idle coordinator.
func NewEngine(opts Options) *Engine {
	if opts.Tracer == nil {
		opts.Tracer = NopTracer{}
	}
	if opts.LoadImage == nil {
		opts.LoadImage = splashimage.Load
	}
	return &Engine{opts: opts, coord: NewCoordinator(opts.Tracer)}
}

// Coordinator returns the lifecycle coordinator for this startup. The real
// window subsystem uses it to claim the stand-in frame or hide the artifact.
func (e *Engine) Coordinator() *Coordinator {
	return e.coord
}

// ScheduleShow blocks until the UI theme is ready and the product descriptor
// resolves, decides which artifact to show, and dispatches its construction
// onto the UI context — exactly once per startup, later calls no-op. It
// returns ctx.Err() if the context ends first; every other failure downgrades
// to "no artifact" and returns nil. Call it from an initialization goroutine,
// never from the UI context itself.
func (e *Engine) ScheduleShow(ctx context.Context, uiReady *Signal, info *appinfo.Future) error {
	if uiReady == nil || info == nil {
		return nil
	}
	if !e.scheduled.CompareAndSwap(false, true) {
		return nil
	}

	// Theming must finish before any surface exists: scale-factor and
	// color-profile decisions depend on it. A hard precondition, not an
	// optimization.
	select {
	case <-uiReady.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-info.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	span := e.opts.Tracer.Start(PhasePrepare)
	action := e.decide(info)
	span.End()
	if action == nil {
		return nil
	}

	queued := e.opts.Tracer.Start(PhaseQueue)
	ok := e.dispatch(func() {
		queued.End()
		shown := e.opts.Tracer.Start(PhaseShow)
		action.Run(e.opts.Backend, e.coord)
		shown.End()
	})
	if !ok {
		queued.End()
	}
	return nil
}

func (e *Engine) dispatch(fn func()) bool {
	if e.opts.Dispatcher == nil {
		return false
	}
	return e.opts.Dispatcher.Dispatch(fn)
}

// decide picks the artifact. Runs off the UI thread; the blocking file and
// image reads happen here so the dispatched action only constructs.
func (e *Engine) decide(info *appinfo.Future) (action *ShowAction) {
	defer fferrors.Recover("startup.decide")

	inf, err := info.Get()
	if err != nil || inf == nil {
		// Without a descriptor there is no splash art to load either.
		kind := fferrors.KindIO
		if errors.Is(err, appinfo.ErrMalformed) {
			kind = fferrors.KindParsing
		}
		fferrors.Report(&fferrors.StartupError{
			Op:   "startup.loadInfo",
			Kind: kind,
			Err:  err,
		})
		return nil
	}

	if rec := e.readState(); rec != nil {
		return &ShowAction{frame: buildStandIn(rec, e.opts.Displays)}
	}

	cfg, err := buildSplash(inf, e.opts.Displays, e.opts.LoadImage)
	if err != nil {
		fferrors.Report(&fferrors.StartupError{
			Op:   "startup.loadSplash",
			Kind: fferrors.KindImage,
			Path: inf.SplashImagePath(),
			Err:  err,
		})
		return nil
	}
	if cfg == nil {
		return nil
	}
	return &ShowAction{splash: cfg}
}

// readState attempts the persisted frame record. Expected absence (no file,
// invalid marker, truncation) is silent; real I/O failures are reported. Both
// fall back to the splash path.
func (e *Engine) readState() *framestate.FrameInfo {
	path := e.opts.StatePath
	if path == "" {
		path = framestate.DefaultPath(e.opts.Paths)
	}
	if path == "" {
		return nil
	}

	rec, err := framestate.Read(path)
	if err == nil {
		return rec
	}
	if errors.Is(err, framestate.ErrNotFound) ||
		errors.Is(err, framestate.ErrInvalidMarker) ||
		errors.Is(err, framestate.ErrTruncated) {
		return nil
	}
	fferrors.Report(&fferrors.StartupError{
		Op:   "framestate.Read",
		Kind: fferrors.KindIO,
		Path: path,
		Err:  err,
	})
	return nil
}
