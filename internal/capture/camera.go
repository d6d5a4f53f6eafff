// Live frame source backed by an OpenCV video capture device
package capture

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/core"
)

// ErrFrameRead is returned when the device yields no frame
var ErrFrameRead = errors.New("camera returned no frame")

var _ core.FrameSource = (*Camera)(nil)

// Camera opens a capture device by index. Each Open acquires the device anew;
// the returned reader must be closed to release it.
type Camera struct {
	DeviceID int
	logger   logrus.FieldLogger

	openDevice func(id int) (captureDevice, error)
}

// captureDevice is the part of *gocv.VideoCapture the camera uses
type captureDevice interface {
	IsOpened() bool
	Read(m *gocv.Mat) bool
	Close() error
}

func NewCamera(deviceID int, logger logrus.FieldLogger) *Camera {
	return &Camera{
		DeviceID:   deviceID,
		logger:     logger,
		openDevice: openVideoCapture,
	}
}

func openVideoCapture(id int) (captureDevice, error) {
	vc, err := gocv.VideoCaptureDevice(id)
	if vc == nil {
		return nil, err
	}
	return vc, err
}

func (c *Camera) Open() (core.FrameReader, error) {
	c.logger.WithField("device", c.DeviceID).Debug("Opening capture device")

	// The capture object is allocated even when the device fails to open.
	vc, err := c.openDevice(c.DeviceID)
	if err != nil || !vc.IsOpened() {
		if vc != nil {
			vc.Close()
		}
		if err == nil {
			err = fmt.Errorf("device not available")
		}
		return nil, fmt.Errorf("open capture device %d: %w", c.DeviceID, err)
	}

	return &stream{
		device: c.DeviceID,
		vc:     vc,
		frame:  gocv.NewMat(),
		logger: c.logger,
	}, nil
}

type stream struct {
	device int
	vc     captureDevice
	frame  gocv.Mat
	logger logrus.FieldLogger
}

func (s *stream) ReadFrame() (core.Image, error) {
	if ok := s.vc.Read(&s.frame); !ok || s.frame.Empty() {
		return core.Image{}, ErrFrameRead
	}
	return core.FromMat(s.frame)
}

func (s *stream) Close() error {
	s.logger.WithField("device", s.device).Debug("Releasing capture device")
	frameErr := s.frame.Close()
	return errors.Join(s.vc.Close(), frameErr)
}
