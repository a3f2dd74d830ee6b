package startup

import (
	"image"

	"github.com/go-drift/firstframe/pkg/appinfo"
	"github.com/go-drift/firstframe/pkg/graphics"
	"github.com/go-drift/firstframe/pkg/platform"
	"github.com/go-drift/firstframe/pkg/splashimage"
)

// buildSplash prepares the splash plan: load the product art, resample it for
// the primary display's scale, and center it. Returns (nil, nil) when there
// is nothing to show — no art configured, or no display attached.
func buildSplash(info *appinfo.Info, displays platform.DisplayService, load func(string) (image.Image, error)) (*platform.SplashConfig, error) {
	path := info.SplashImagePath()
	if path == "" || displays == nil {
		return nil, nil
	}
	primary, ok := displays.Primary()
	if !ok {
		return nil, nil
	}

	img, err := load(path)
	if err != nil {
		return nil, err
	}

	// The art's pixel size is its logical size; on HiDPI displays the
	// pixels are resampled up so the surface stays crisp while keeping the
	// same logical footprint.
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if primary.Scale > 0 && primary.Scale != 1 {
		img = splashimage.Scale(img, primary.Scale)
	}

	center := primary.Bounds.Center()
	bounds := graphics.RectOf(center.X-w/2, center.Y-h/2, w, h)
	return &platform.SplashConfig{Image: img, Bounds: bounds}, nil
}
