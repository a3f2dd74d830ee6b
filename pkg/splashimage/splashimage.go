// Package splashimage loads and scales product splash art. PNG, JPEG, GIF,
// and BMP assets are supported.
package splashimage

import (
	"fmt"
	"image"
	"os"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"golang.org/x/image/draw"
)

// Load reads and decodes the splash image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open splash image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode splash image %s: %w", path, err)
	}
	return img, nil
}

// Scale resamples img by factor, for crisp rendering on HiDPI displays.
// Factors <= 0 or == 1 return img unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if img == nil || factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 || h < 1 {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
