// Package startup decides what the user sees before the real main window
// exists: a splash image, a stand-in frame matching the previous session, or
// nothing at all.
//
// # Decision flow
//
// Initialization tasks run concurrently and finish in any order. The Engine
// waits for two of them — UI theme readiness (a Signal) and the product
// descriptor (an appinfo.Future) — then attempts the persisted frame record.
// A usable record yields a stand-in frame matching the previous session; a
// missing or unusable record yields the product splash. Exactly one of the
// two is chosen, captured in a ShowAction, and dispatched once onto the
// UI-owning context.
//
// Theming must be ready before any surface is constructed: scale-factor and
// color-profile decisions depend on it, and a surface built earlier would
// render at the wrong DPI.
//
// # Handoff
//
// The Coordinator tracks the current artifact. When the real window is ready,
// the embedder either claims the stand-in frame for reuse (ClaimFrame) or
// arranges for the artifact to disappear the moment the real window becomes
// visible (HideOnFirstShow) — hiding after the replacement is up, so no empty
// gap flashes in between.
//
// # Failure policy
//
// Nothing in this package may abort or delay application startup. Every
// failure — unreadable record, corrupt image, surface construction error —
// downgrades to a lesser artifact or to none, and is reported through the
// errors package.
package startup
