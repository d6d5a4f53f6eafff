package display

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basic-image-editor/internal/core"
)

func solid(width, height int, b, g, r uint8) core.Image {
	img := core.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetBGR(x, y, b, g, r)
		}
	}
	return img
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"usable", 320, 240, 320, 240},
		{"minimum", 10, 10, 10, 10},
		{"narrow", 9, 500, FallbackWidth, FallbackHeight},
		{"short", 500, 1, FallbackWidth, FallbackHeight},
		{"unrealised widget", 0, 0, FallbackWidth, FallbackHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Viewport(tt.w, tt.h)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestToNRGBASwapsChannels(t *testing.T) {
	img := core.NewImage(2, 1)
	img.SetBGR(0, 0, 10, 20, 30)
	img.SetBGR(1, 0, 255, 0, 0)

	out := ToNRGBA(img)
	assert.Equal(t, color.NRGBA{R: 30, G: 20, B: 10, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, out.NRGBAAt(1, 0))
}

func TestRenderStretchesToViewport(t *testing.T) {
	img := solid(100, 50, 1, 2, 3)

	out := Render(img, 30, 90)
	require.Equal(t, 30, out.Bounds().Dx())
	require.Equal(t, 90, out.Bounds().Dy())

	for _, p := range [][2]int{{0, 0}, {15, 45}, {29, 89}} {
		assert.Equal(t, color.NRGBA{R: 3, G: 2, B: 1, A: 255}, out.NRGBAAt(p[0], p[1]))
	}
}

func TestRenderKeepsOrientation(t *testing.T) {
	// left half blue, right half red, bottom row green
	img := core.NewImage(4, 3)
	for y := 0; y < 2; y++ {
		img.SetBGR(0, y, 255, 0, 0)
		img.SetBGR(1, y, 255, 0, 0)
		img.SetBGR(2, y, 0, 0, 255)
		img.SetBGR(3, y, 0, 0, 255)
	}
	for x := 0; x < 4; x++ {
		img.SetBGR(x, 2, 0, 255, 0)
	}

	out := Render(img, 40, 90)
	require.Equal(t, 40, out.Bounds().Dx())
	require.Equal(t, 90, out.Bounds().Dy())

	assert.Equal(t, color.NRGBA{B: 255, A: 255}, out.NRGBAAt(2, 5))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(37, 5))
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, out.NRGBAAt(2, 87))
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, out.NRGBAAt(37, 87))
}

func TestRenderUsesFallbackForTinyViewport(t *testing.T) {
	out := Render(solid(4, 4, 0, 0, 0), 5, 300)
	assert.Equal(t, FallbackWidth, out.Bounds().Dx())
	assert.Equal(t, FallbackHeight, out.Bounds().Dy())
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	img := solid(8, 6, 9, 8, 7)
	before := img.Clone()

	out := Render(img, 8, 6)
	out.Pix[0] = 0

	assert.True(t, before.Equal(img))
}

func TestRenderEmptyImage(t *testing.T) {
	out := Render(core.Image{}, 40, 20)
	assert.Equal(t, 40, out.Bounds().Dx())
	assert.Equal(t, 20, out.Bounds().Dy())
}
