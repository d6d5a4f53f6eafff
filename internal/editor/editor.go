// Package editor connects user actions to the editing session.
//
// The GUI drives an Editor; the Editor asks for numeric input through a
// Prompter, runs the session operator and hands the rendered result to a
// Surface. Nothing here depends on a particular toolkit.
package editor

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"basic-image-editor/internal/algorithms"
	"basic-image-editor/internal/core"
	"basic-image-editor/internal/display"
	"basic-image-editor/internal/metrics"
)

// ErrNoChannelSelected is reported when a channel is requested without choosing one
var ErrNoChannelSelected = errors.New("select a channel first")

// Rect holds the two corners entered for a rectangle annotation
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Prompter asks the user for operator parameters. done may run later, on the
// UI thread; ok is false when the user cancelled.
type Prompter interface {
	AskKernelSize(done func(size int, ok bool))
	AskRectangle(done func(rect Rect, ok bool))
}

// Surface shows rendered images and messages to the user
type Surface interface {
	Present(img image.Image)
	ViewportSize() (width, height int)
	ShowError(err error)
	ShowWarning(message string)
	ShowInfo(title, message string)
	SetStatus(message string)
}

// FileReader returns the encoded bytes of an image file
type FileReader interface {
	ReadImageFile(path string) ([]byte, error)
}

type Editor struct {
	session   *core.Session
	files     FileReader
	camera    core.FrameSource
	prompter  Prompter
	surface   Surface
	evaluator *metrics.Evaluator
	logger    logrus.FieldLogger
}

func New(session *core.Session, files FileReader, camera core.FrameSource,
	prompter Prompter, surface Surface, logger logrus.FieldLogger) *Editor {

	return &Editor{
		session:   session,
		files:     files,
		camera:    camera,
		prompter:  prompter,
		surface:   surface,
		evaluator: metrics.NewEvaluator(),
		logger:    logger,
	}
}

// OpenFile reads path and loads it as the new original image
func (e *Editor) OpenFile(path string) error {
	raw, err := e.files.ReadImageFile(path)
	if err != nil {
		return e.fail("open", err)
	}

	img, err := e.session.Load(raw)
	if err != nil {
		return e.fail("open", fmt.Errorf("%s: %w", filepath.Base(path), err))
	}

	e.show(img, "Loaded "+filepath.Base(path))
	return nil
}

// Capture takes a snapshot from the camera and makes it the new original image
func (e *Editor) Capture() error {
	img, err := e.session.Capture(e.camera)
	if err != nil {
		return e.fail("capture", err)
	}

	e.show(img, "Snapshot captured")
	return nil
}

// ShowChannel isolates the channel named by choice ("R", "Green", ...).
// An empty choice means nothing was picked in the channel selector.
func (e *Editor) ShowChannel(choice string) error {
	if !e.session.HasImage() {
		return e.fail("channel", core.ErrNoImage)
	}
	if choice == "" {
		return e.fail("channel", ErrNoChannelSelected)
	}

	ch, err := algorithms.ParseChannel(choice)
	if err != nil {
		return e.fail("channel", err)
	}

	img, err := e.session.IsolateChannel(ch)
	if err != nil {
		return e.fail("channel", err)
	}

	e.show(img, "Showing "+ch.String()+" channel")
	return nil
}

func (e *Editor) Negative() error {
	img, err := e.session.Negate()
	if err != nil {
		return e.fail("negative", err)
	}

	e.show(img, "Negative")
	return nil
}

// Blur asks for a kernel size and blurs the current image. The returned error
// only covers the precondition; operator failures go to the surface.
func (e *Editor) Blur() error {
	if !e.session.HasImage() {
		return e.fail("blur", core.ErrNoImage)
	}

	e.prompter.AskKernelSize(func(size int, ok bool) {
		if !ok {
			e.logger.Debug("Blur cancelled")
			return
		}

		img, err := e.session.BoxBlur(size)
		if err != nil {
			e.fail("blur", err)
			return
		}
		e.show(img, fmt.Sprintf("Box blur %dx%d", size, size))
	})
	return nil
}

// Rectangle asks for two corners and outlines them on the current image
func (e *Editor) Rectangle() error {
	if !e.session.HasImage() {
		return e.fail("rectangle", core.ErrNoImage)
	}

	e.prompter.AskRectangle(func(r Rect, ok bool) {
		if !ok {
			e.logger.Debug("Rectangle cancelled")
			return
		}

		img, err := e.session.DrawRectangle(r.X1, r.Y1, r.X2, r.Y2)
		if err != nil {
			e.fail("rectangle", err)
			return
		}
		e.show(img, fmt.Sprintf("Rectangle (%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2))
	})
	return nil
}

// Reset restores the original image
func (e *Editor) Reset() error {
	img, err := e.session.Reset()
	if err != nil {
		return e.fail("reset", err)
	}

	e.show(img, "Reset to original")
	return nil
}

// Redraw renders the current image again, e.g. after the viewport was resized
func (e *Editor) Redraw() {
	img, ok := e.session.Current()
	if !ok {
		return
	}
	w, h := e.surface.ViewportSize()
	e.surface.Present(display.Render(img, w, h))
}

func (e *Editor) show(img core.Image, action string) {
	w, h := e.surface.ViewportSize()
	e.surface.Present(display.Render(img, w, h))

	status := fmt.Sprintf("%s: %dx%d", action, img.Width, img.Height)
	if original, ok := e.session.Original(); ok {
		if summary := e.evaluator.Summary(original, img); summary != "" {
			status += " | " + summary
		}
	}
	e.surface.SetStatus(status)
}

func (e *Editor) fail(action string, err error) error {
	entry := e.logger.WithField("action", action).WithError(err)

	switch {
	case errors.Is(err, core.ErrNoImage):
		entry.Debug("Action needs an image")
		e.surface.ShowWarning("Load an image or take a snapshot first.")
	case errors.Is(err, core.ErrNoOriginal):
		entry.Debug("Nothing to reset")
		e.surface.ShowInfo("Reset", "There is no original image to restore.")
	default:
		entry.Warn("Action failed")
		e.surface.ShowError(err)
	}
	return err
}
