// Package framestate reads the binary record a previous session left behind
// describing its main frame: device-space bounds, background color, and window
// state. The record is written by an external collaborator; this package only
// parses it, defensively, since the file may be absent, truncated, or
// explicitly marked invalid.
package framestate

import (
	"errors"

	"github.com/go-drift/firstframe/pkg/graphics"
	"github.com/go-drift/firstframe/pkg/platform"
)

// FileName is the well-known name of the record inside the product system
// directory.
const FileName = "frame.place"

// Sentinel results for the expected non-record cases. Callers fall back to
// the splash path on any of these without logging.
var (
	// ErrNotFound means no record exists. The common case on a first run.
	ErrNotFound = errors.New("framestate: no record")
	// ErrInvalidMarker means the record is explicitly marked unusable by
	// its writer.
	ErrInvalidMarker = errors.New("framestate: record marked invalid")
	// ErrTruncated means the file is shorter than the full record.
	ErrTruncated = errors.New("framestate: truncated record")
)

// FrameInfo is the decoded record. Read-only once parsed.
type FrameInfo struct {
	// Bounds is in device space as recorded; it must be mapped through a
	// DisplayService before use.
	Bounds graphics.Rect
	// Background is the frame background color, alpha retained.
	Background graphics.Color
	// FullScreen records whether the frame was in full-screen mode.
	FullScreen bool
	// State is the maximized/iconified bitmask.
	State platform.WindowState
}
