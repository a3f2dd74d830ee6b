package platform

import (
	"image"

	"github.com/go-drift/firstframe/pkg/graphics"
)

// WindowState is a bitmask describing maximized/iconified/normal frame state.
// The values match the persisted record's external writer and must not be
// renumbered.
type WindowState int

const (
	// StateNormal is an unmaximized, visible frame.
	StateNormal WindowState = 0
	// StateIconified is a minimized frame.
	StateIconified WindowState = 1
	// StateMaximizedHorizontal is a frame maximized along the x axis only.
	StateMaximizedHorizontal WindowState = 2
	// StateMaximizedVertical is a frame maximized along the y axis only.
	StateMaximizedVertical WindowState = 4
	// StateMaximizedBoth is a fully maximized frame.
	StateMaximizedBoth WindowState = StateMaximizedHorizontal | StateMaximizedVertical
)

// IsMaximized returns true if both maximize bits are set.
func (s WindowState) IsMaximized() bool {
	return s&StateMaximizedBoth == StateMaximizedBoth
}

// IsIconified returns true if the iconified bit is set.
func (s WindowState) IsIconified() bool {
	return s&StateIconified != 0
}

// Artifact is a visual surface created by a WindowBackend. Its methods must
// only be called from the UI-owning context.
type Artifact interface {
	// Hide removes the surface from the screen without releasing it.
	Hide()
	// Dispose releases the surface. Implementations must tolerate Dispose
	// after Hide.
	Dispose()
}

// Frame is a placeholder main-window surface. It is distinct from Artifact so
// the real window subsystem can claim and reuse it instead of creating a new
// native window.
type Frame interface {
	Artifact
}

// Window is the real application window as seen by the handoff coordinator.
type Window interface {
	// OnShown registers fn to be called when the window becomes visible.
	// It returns a function that removes the listener. If the window is
	// already visible, fn fires on the next visibility event (native
	// windows emit one when mapped).
	OnShown(fn func()) (remove func())
}

// SplashConfig describes the splash surface to create: an undecorated,
// non-interactive top-level surface rendering Image at Bounds (logical
// coordinates, already centered by the presenter).
type SplashConfig struct {
	Image  image.Image
	Bounds graphics.Rect
}

// FrameConfig describes the stand-in frame to create.
type FrameConfig struct {
	// Bounds is the logical placement. A zero rect means the backend's
	// default placement policy applies.
	Bounds graphics.Rect
	// Background is painted before the real content arrives, to reduce the
	// perceived flash.
	Background graphics.Color
	// State restores the previous session's maximized/iconified state.
	State WindowState
	// FullScreen restores the previous session's full-screen mode.
	FullScreen bool
	// MinWidth is a floor on the frame width in logical pixels. Height has
	// no floor beyond the backend's default minimum.
	MinWidth int
	// Focusable is false for stand-in frames: they must not steal input
	// focus from whatever the user was last doing.
	Focusable bool
	// Closable is false for stand-in frames: user close requests are
	// ignored, the real window decides the frame's fate.
	Closable bool
	// SuppressDockIcon hides the dock/taskbar icon image where the
	// platform supports it. Cosmetic only.
	SuppressDockIcon bool
}

// WindowBackend creates native top-level surfaces. Implementations live in
// the embedding application; every method must be called from the UI-owning
// context.
type WindowBackend interface {
	CreateSplash(cfg SplashConfig) (Artifact, error)
	CreateFrame(cfg FrameConfig) (Frame, error)
}
