package algorithms

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

const DefaultRectangleThickness = 2

// DefaultAnnotationColor is full-intensity red
var DefaultAnnotationColor = color.RGBA{R: 255, A: 255}

// Rectangle outlines the box spanned by two corner points. Corners are not
// clamped; whatever falls outside the image is clipped by OpenCV.
type Rectangle struct {
	P1, P2    image.Point
	Color     color.RGBA
	Thickness int
}

func NewRectangle(p1, p2 image.Point, c color.RGBA) *Rectangle {
	return &Rectangle{
		P1:        p1,
		P2:        p2,
		Color:     c,
		Thickness: DefaultRectangleThickness,
	}
}

func (r *Rectangle) Apply(input gocv.Mat) (gocv.Mat, error) {
	output := input.Clone()

	// gocv turns the RGBA colour into a BGR scalar, so Color stays in RGB terms here.
	box := image.Rectangle{Min: r.P1, Max: r.P2}.Canon()
	if err := gocv.RectangleWithParams(&output, box, r.Color, r.Thickness, gocv.Line8, 0); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("draw rectangle: %w", err)
	}
	return output, nil
}

func (r *Rectangle) Validate() error {
	if r.Thickness < 1 {
		return invalidf("thickness must be positive, got %d", r.Thickness)
	}
	return nil
}

func (r *Rectangle) Name() string {
	return fmt.Sprintf("rectangle (%d,%d)-(%d,%d)", r.P1.X, r.P1.Y, r.P2.X, r.P2.Y)
}
