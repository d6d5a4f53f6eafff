// Core image data structure shared by the session and its collaborators
package core

import (
	"bytes"
	"fmt"

	"gocv.io/x/gocv"
)

// BytesPerPixel is the number of channel bytes per pixel (blue, green, red)
const BytesPerPixel = 3

// Image is an owned 8-bit BGR pixel buffer. Pix holds Height rows of Width
// pixels each, three bytes per pixel in blue, green, red order.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage allocates a black image
func NewImage(width, height int) Image {
	return Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// Empty reports whether the image holds no pixels
func (img Image) Empty() bool {
	return img.Width <= 0 || img.Height <= 0 || len(img.Pix) == 0
}

// Validate checks that the buffer length matches the dimensions
func (img Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d", img.Width, img.Height)
	}
	if want := img.Width * img.Height * BytesPerPixel; len(img.Pix) != want {
		return fmt.Errorf("pixel buffer holds %d bytes, want %d for %dx%d", len(img.Pix), want, img.Width, img.Height)
	}
	return nil
}

// Clone returns a deep copy
func (img Image) Clone() Image {
	out := Image{Width: img.Width, Height: img.Height}
	if img.Pix != nil {
		out.Pix = make([]byte, len(img.Pix))
		copy(out.Pix, img.Pix)
	}
	return out
}

// Equal reports whether both images have the same size and identical bytes
func (img Image) Equal(other Image) bool {
	return img.Width == other.Width && img.Height == other.Height && bytes.Equal(img.Pix, other.Pix)
}

// SameSize reports whether both images have identical dimensions
func (img Image) SameSize(other Image) bool {
	return img.Width == other.Width && img.Height == other.Height
}

// BGRAt returns the channel values of the pixel at (x, y)
func (img Image) BGRAt(x, y int) (b, g, r uint8) {
	i := img.offset(x, y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// SetBGR sets the channel values of the pixel at (x, y)
func (img Image) SetBGR(x, y int, b, g, r uint8) {
	i := img.offset(x, y)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = b, g, r
}

func (img Image) offset(x, y int) int {
	return (y*img.Width + x) * BytesPerPixel
}

// ToMat copies the image into a new 8-bit 3-channel Mat. The Mat never
// aliases img.Pix; the caller must close it.
func (img Image) ToMat() (gocv.Mat, error) {
	if err := img.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	data := make([]byte, len(img.Pix))
	copy(data, img.Pix)
	return gocv.NewMatFromBytes(img.Height, img.Width, gocv.MatTypeCV8UC3, data)
}

// FromMat copies an OpenCV matrix into an Image. Grayscale and BGRA matrices
// are converted to BGR first.
func FromMat(mat gocv.Mat) (Image, error) {
	if mat.Empty() {
		return Image{}, fmt.Errorf("cannot convert empty matrix")
	}

	switch mat.Type() {
	case gocv.MatTypeCV8UC3:
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC4:
		code := gocv.ColorGrayToBGR
		if mat.Channels() == 4 {
			code = gocv.ColorBGRAToBGR
		}
		bgr := gocv.NewMat()
		defer bgr.Close()
		if err := gocv.CvtColor(mat, &bgr, code); err != nil {
			return Image{}, fmt.Errorf("convert to BGR: %w", err)
		}
		return FromMat(bgr)
	default:
		return Image{}, fmt.Errorf("unsupported matrix type: %v", mat.Type())
	}

	if !mat.IsContinuous() {
		dense := mat.Clone()
		defer dense.Close()
		return FromMat(dense)
	}

	img := Image{
		Width:  mat.Cols(),
		Height: mat.Rows(),
		Pix:    mat.ToBytes(),
	}
	if err := img.Validate(); err != nil {
		return Image{}, err
	}
	return img, nil
}

// DecodeImage decodes a compressed payload (PNG, JPEG, BMP, TIFF...) into a BGR image
func DecodeImage(raw []byte) (Image, error) {
	if len(raw) == 0 {
		return Image{}, fmt.Errorf("empty payload")
	}

	mat, err := gocv.IMDecode(raw, gocv.IMReadColor)
	defer mat.Close()
	if err != nil {
		return Image{}, err
	}

	if mat.Empty() {
		return Image{}, fmt.Errorf("payload is not a supported image")
	}
	return FromMat(mat)
}
