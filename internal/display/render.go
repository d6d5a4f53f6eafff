// Package display turns session images into pixel buffers sized for the viewport.
//
// Render stretches the image to fill the viewport in both axes independently;
// the aspect ratio of the source is not kept.
package display

import (
	"image"

	"github.com/disintegration/imaging"

	"basic-image-editor/internal/core"
)

const (
	// MinViewport is the smallest usable viewport side in pixels
	MinViewport = 10

	FallbackWidth  = 600
	FallbackHeight = 400
)

// Viewport returns the size Render will produce for the requested viewport
func Viewport(width, height int) (int, int) {
	if width < MinViewport || height < MinViewport {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}

// Render converts img from BGR to RGB and resamples it to exactly fill the
// viewport using bilinear interpolation. img is only read.
func Render(img core.Image, viewportWidth, viewportHeight int) *image.NRGBA {
	w, h := Viewport(viewportWidth, viewportHeight)

	if img.Validate() != nil {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	src := ToNRGBA(img)
	if img.Width == w && img.Height == h {
		return src
	}
	return imaging.Resize(src, w, h, imaging.Linear)
}

// ToNRGBA copies a BGR image into an opaque RGB one of the same size
func ToNRGBA(img core.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, j := 0, 0; i+2 < len(img.Pix) && j+3 < len(out.Pix); i, j = i+core.BytesPerPixel, j+4 {
		out.Pix[j] = img.Pix[i+2]
		out.Pix[j+1] = img.Pix[i+1]
		out.Pix[j+2] = img.Pix[i]
		out.Pix[j+3] = 0xff
	}
	return out
}
