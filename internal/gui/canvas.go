// Image canvas that reports its pixel size and redraws on resize
package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// ImageCanvas shows a pre-rendered raster stretched over its whole area
type ImageCanvas struct {
	widget.BaseWidget

	logger     logrus.FieldLogger
	background *canvas.Rectangle
	raster     *canvas.Image
	size       fyne.Size

	onResized func()
}

func NewImageCanvas(logger logrus.FieldLogger) *ImageCanvas {
	c := &ImageCanvas{
		logger:     logger,
		background: canvas.NewRectangle(color.Black),
		raster:     canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1))),
	}
	c.raster.FillMode = canvas.ImageFillStretch
	c.raster.ScaleMode = canvas.ImageScaleFastest
	c.raster.SetMinSize(fyne.NewSize(200, 150))
	c.raster.Hide()

	c.ExtendBaseWidget(c)
	return c
}

func (c *ImageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.background, c.raster))
}

// Resize lays the canvas out and asks for a redraw when the size changed
func (c *ImageCanvas) Resize(size fyne.Size) {
	c.BaseWidget.Resize(size)
	if size == c.size {
		return
	}
	c.size = size

	c.logger.WithFields(logrus.Fields{
		"width":  size.Width,
		"height": size.Height,
	}).Debug("Canvas resized")

	if c.onResized != nil {
		c.onResized()
	}
}

// PixelSize returns the canvas size in device pixels
func (c *ImageCanvas) PixelSize() (int, int) {
	scale := float32(1)
	if app := fyne.CurrentApp(); app != nil {
		if cv := app.Driver().CanvasForObject(c); cv != nil {
			scale = cv.Scale()
		}
	}
	return int(c.size.Width * scale), int(c.size.Height * scale)
}

// SetImage replaces the displayed raster
func (c *ImageCanvas) SetImage(img image.Image) {
	c.raster.Image = img
	c.raster.Show()
	c.raster.Refresh()
}

func (c *ImageCanvas) SetResizeCallback(onResized func()) {
	c.onResized = onResized
}
