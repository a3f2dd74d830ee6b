package startup

import (
	"runtime"

	"github.com/go-drift/firstframe/pkg/framestate"
	"github.com/go-drift/firstframe/pkg/platform"
)

// minFrameWidth is the narrowest stand-in frame allowed, in logical pixels.
// Height has no floor here; the backend's default minimum applies.
const minFrameWidth = 340

// buildStandIn prepares the stand-in frame plan from the previous session's
// record. The frame must not steal focus and must ignore user close requests;
// the zero values of FrameConfig.Focusable and Closable carry both.
func buildStandIn(rec *framestate.FrameInfo, displays platform.DisplayService) *platform.FrameConfig {
	cfg := &platform.FrameConfig{
		Background: rec.Background,
		State:      rec.State,
		FullScreen: rec.FullScreen,
		MinWidth:   minFrameWidth,
		// The stand-in has no content yet; a dock icon flashing an empty
		// frame looks broken on macOS.
		SuppressDockIcon: runtime.GOOS == "darwin",
	}

	if displays != nil {
		if bounds, ok := displays.MapDeviceBounds(rec.Bounds); ok {
			if bounds.Width < minFrameWidth {
				bounds.Width = minFrameWidth
			}
			cfg.Bounds = bounds
		}
	}
	// A zero Bounds means mapping failed (displays changed since last
	// session); the backend's default placement applies.
	return cfg
}
