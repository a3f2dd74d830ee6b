package startup

// Phase names reported to the Tracer.
const (
	// PhasePrepare covers reading the persisted record and loading splash
	// art, off the UI thread.
	PhasePrepare = "splash.prepare"
	// PhaseQueue covers the time the show action waits in the UI queue.
	PhaseQueue = "splash.queue"
	// PhaseShow covers native surface construction on the UI thread.
	PhaseShow = "splash.show"
	// EventHidden fires when the current artifact is hidden.
	EventHidden = "splash.hidden"
)

// Tracer receives named startup phases for external timing instrumentation.
// Purely observational: implementations must not influence control flow.
type Tracer interface {
	// Start opens a named phase; the returned Span ends it.
	Start(name string) Span
	// Instant records a point-in-time event.
	Instant(name string)
}

// Span is an open trace phase.
type Span interface {
	End()
}

// NopTracer discards all phases.
type NopTracer struct{}

func (NopTracer) Start(string) Span { return nopSpan{} }
func (NopTracer) Instant(string)    {}

type nopSpan struct{}

func (nopSpan) End() {}
