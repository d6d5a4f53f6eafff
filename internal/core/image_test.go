package core

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG encodes a BGR image as PNG so it can be fed through Load
func encodePNG(t *testing.T, img Image) []byte {
	t.Helper()
	rgba := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			b, g, r := img.BGRAt(x, y)
			rgba.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, rgba))
	return buf.Bytes()
}

// gradientImage has distinct values in every channel of every pixel
func gradientImage(width, height int) Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetBGR(x, y, uint8(10*x+1), uint8(20*y+2), uint8(5*(x+y)+3))
		}
	}
	return img
}

func TestImageValidate(t *testing.T) {
	tests := []struct {
		name    string
		img     Image
		wantErr bool
	}{
		{"valid", NewImage(3, 2), false},
		{"zero width", Image{Width: 0, Height: 2}, true},
		{"short buffer", Image{Width: 2, Height: 2, Pix: make([]byte, 11)}, true},
		{"long buffer", Image{Width: 2, Height: 2, Pix: make([]byte, 13)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.img.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImageCloneIsIndependent(t *testing.T) {
	img := gradientImage(4, 3)
	clone := img.Clone()
	require.True(t, img.Equal(clone))

	clone.SetBGR(0, 0, 0, 0, 0)
	assert.False(t, img.Equal(clone))
	b, g, r := img.BGRAt(0, 0)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{b, g, r})
}

func TestMatRoundTrip(t *testing.T) {
	img := gradientImage(5, 4)

	mat, err := img.ToMat()
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 5, mat.Cols())
	assert.Equal(t, 4, mat.Rows())
	assert.Equal(t, 3, mat.Channels())

	back, err := FromMat(mat)
	require.NoError(t, err)
	assert.True(t, img.Equal(back))
}

func TestToMatDoesNotAlias(t *testing.T) {
	img := NewImage(2, 2)
	mat, err := img.ToMat()
	require.NoError(t, err)
	defer mat.Close()

	mat.SetUCharAt(0, 0, 200)
	assert.Equal(t, byte(0), img.Pix[0])
}

func TestDecodeImagePreservesChannelOrder(t *testing.T) {
	img := NewImage(1, 1)
	img.SetBGR(0, 0, 10, 20, 30)

	decoded, err := DecodeImage(encodePNG(t, img))
	require.NoError(t, err)

	b, g, r := decoded.BGRAt(0, 0)
	assert.Equal(t, uint8(10), b)
	assert.Equal(t, uint8(20), g)
	assert.Equal(t, uint8(30), r)
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(nil)
	assert.Error(t, err)

	_, err = DecodeImage([]byte("definitely not an image"))
	assert.Error(t, err)
}
