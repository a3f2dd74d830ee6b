package platform

import "github.com/go-drift/firstframe/pkg/graphics"

// Display describes one attached monitor.
type Display struct {
	// ID is a stable identifier within the current session.
	ID int
	// Bounds is the display's rectangle in the logical coordinate space.
	Bounds graphics.Rect
	// Scale is the number of device pixels per logical pixel. Zero is
	// treated as 1.
	Scale float64
}

// DeviceBounds returns the display's rectangle in device pixels.
func (d Display) DeviceBounds() graphics.Rect {
	return d.Bounds.Scale(d.scale())
}

func (d Display) scale() float64 {
	if d.Scale <= 0 {
		return 1
	}
	return d.Scale
}

// DisplayService answers questions about the current display topology and
// maps device-space bounds recorded by a previous session onto it.
type DisplayService interface {
	// Primary returns the primary display, or false if no display is
	// attached (headless session).
	Primary() (Display, bool)

	// MapDeviceBounds converts device-space bounds into a valid on-screen
	// logical rectangle. Returns false if no display can host the bounds,
	// e.g. the recording display is no longer attached.
	MapDeviceBounds(device graphics.Rect) (graphics.Rect, bool)
}

// StaticDisplays is a DisplayService over a fixed display list. Embedders with
// a live windowing stack implement DisplayService directly; StaticDisplays
// covers tests and embedders that snapshot topology once at startup.
type StaticDisplays struct {
	Displays []Display
}

// Primary returns the first display in the list.
func (s StaticDisplays) Primary() (Display, bool) {
	if len(s.Displays) == 0 {
		return Display{}, false
	}
	return s.Displays[0], true
}

// MapDeviceBounds picks the display whose device bounds overlap the stored
// rect the most, converts to that display's logical space, and fits the
// result inside the display. A rect overlapping no attached display maps to
// nothing; callers fall back to default placement.
func (s StaticDisplays) MapDeviceBounds(device graphics.Rect) (graphics.Rect, bool) {
	if device.IsEmpty() {
		return graphics.Rect{}, false
	}

	best := -1
	bestArea := 0
	for i, d := range s.Displays {
		area := d.DeviceBounds().Intersect(device).Area()
		if area > bestArea {
			best = i
			bestArea = area
		}
	}
	if best < 0 {
		return graphics.Rect{}, false
	}

	d := s.Displays[best]
	logical := device.Scale(1 / d.scale())
	return logical.FitInto(d.Bounds), true
}
