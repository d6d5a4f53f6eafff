// Editing session: the original image, the image currently shown, and the operators between them
package core

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/sirupsen/logrus"

	"basic-image-editor/internal/algorithms"
)

// StabilizationFrames is the number of frames dropped after opening a live
// source so exposure and focus can settle.
const StabilizationFrames = 5

// Channel selects a colour plane for IsolateChannel
type Channel = algorithms.Channel

const (
	Blue  = algorithms.Blue
	Green = algorithms.Green
	Red   = algorithms.Red
)

// FrameSource is a live image source such as a camera
type FrameSource interface {
	Open() (FrameReader, error)
}

// FrameReader reads frames from an opened FrameSource
type FrameReader interface {
	ReadFrame() (Image, error)
	Close() error
}

// Session tracks the image as first loaded (original) and the image after the
// most recent operator (current). Both are unset until the first successful
// Load or Capture. Every method returns copies; callers never share buffers
// with the session.
type Session struct {
	mu              sync.RWMutex
	original        Image
	current         Image
	loaded          bool
	annotationColor color.RGBA
	logger          logrus.FieldLogger
}

// Option configures a Session
type Option func(*Session)

// WithAnnotationColor sets the colour used by DrawRectangle
func WithAnnotationColor(c color.RGBA) Option {
	return func(s *Session) {
		s.annotationColor = c
	}
}

// NewSession creates an empty session
func NewSession(logger logrus.FieldLogger, opts ...Option) *Session {
	s := &Session{
		annotationColor: algorithms.DefaultAnnotationColor,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load decodes raw and makes it both the original and the current image.
// On failure the session is left untouched.
func (s *Session) Load(raw []byte) (Image, error) {
	img, err := DecodeImage(raw)
	if err != nil {
		s.logger.WithError(err).WithField("bytes", len(raw)).Warn("Failed to decode image")
		return Image{}, &DecodeError{Size: len(raw), Err: err}
	}

	s.replace(img, "load")
	return img.Clone(), nil
}

// Capture opens src, drops StabilizationFrames frames and keeps the next one.
// The reader is closed on every path; on failure the session is left untouched.
func (s *Session) Capture(src FrameSource) (Image, error) {
	reader, err := src.Open()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to open frame source")
		return Image{}, &CaptureError{Err: err}
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			s.logger.WithError(cerr).Warn("Failed to close frame source")
		}
	}()

	for i := 1; i <= StabilizationFrames; i++ {
		if _, err := reader.ReadFrame(); err != nil {
			s.logger.WithError(err).WithField("frame", i).Warn("Failed to read stabilization frame")
			return Image{}, &CaptureError{Frame: i, Err: err}
		}
	}

	frame, err := reader.ReadFrame()
	if err == nil {
		err = frame.Validate()
	}
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read frame")
		return Image{}, &CaptureError{Frame: StabilizationFrames + 1, Err: err}
	}

	frame = frame.Clone()
	s.replace(frame, "capture")
	return frame.Clone(), nil
}

func (s *Session) replace(img Image, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.original = img.Clone()
	s.current = img.Clone()
	s.loaded = true

	s.logger.WithFields(logrus.Fields{
		"source": source,
		"width":  img.Width,
		"height": img.Height,
	}).Info("Image loaded into session")
}

// IsolateChannel zeroes every channel except ch
func (s *Session) IsolateChannel(ch Channel) (Image, error) {
	return s.apply(algorithms.NewChannelIsolation(ch))
}

// Negate replaces every channel value v with 255 - v
func (s *Session) Negate() (Image, error) {
	return s.apply(algorithms.NewNegative())
}

// BoxBlur applies a mean filter with a kernelSize x kernelSize window.
// kernelSize must be odd and at least 1.
func (s *Session) BoxBlur(kernelSize int) (Image, error) {
	return s.apply(algorithms.NewBoxBlur(kernelSize))
}

// DrawRectangle outlines the rectangle with corners (x1, y1) and (x2, y2) on a
// copy of the current image. Coordinates outside the image are clipped, not rejected.
func (s *Session) DrawRectangle(x1, y1, x2, y2 int) (Image, error) {
	return s.apply(algorithms.NewRectangle(image.Pt(x1, y1), image.Pt(x2, y2), s.annotationColor))
}

// Reset discards all edits and makes a copy of the original the current image again
func (s *Session) Reset() (Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return Image{}, ErrNoOriginal
	}
	s.current = s.original.Clone()

	s.logger.Debug("Session reset to original image")
	return s.current.Clone(), nil
}

func (s *Session) apply(op algorithms.Operator) (Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return Image{}, ErrNoImage
	}
	if err := op.Validate(); err != nil {
		return Image{}, &InvalidArgumentError{Op: op.Name(), Err: err}
	}

	input, err := s.current.ToMat()
	if err != nil {
		return Image{}, fmt.Errorf("%s: %w", op.Name(), err)
	}
	defer input.Close()

	output, err := algorithms.Run(op, input)
	if err != nil {
		return Image{}, fmt.Errorf("%s: %w", op.Name(), err)
	}
	defer output.Close()

	result, err := FromMat(output)
	if err != nil {
		return Image{}, fmt.Errorf("%s: %w", op.Name(), err)
	}
	s.current = result

	s.logger.WithFields(logrus.Fields{
		"operator": op.Name(),
		"width":    result.Width,
		"height":   result.Height,
	}).Debug("Operator applied")

	return result.Clone(), nil
}

// HasImage reports whether an image has been loaded or captured
func (s *Session) HasImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Current returns a copy of the image currently shown
func (s *Session) Current() (Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return Image{}, false
	}
	return s.current.Clone(), true
}

// Original returns a copy of the image as loaded
func (s *Session) Original() (Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return Image{}, false
	}
	return s.original.Clone(), true
}
