package capture

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/core"
)

// A device index this high is never present on a test machine
const missingDevice = 9999

func TestOpenMissingDevice(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cam := NewCamera(missingDevice, logger)

	reader, err := cam.Open()
	assert.Error(t, err)
	assert.Nil(t, reader)
}

func TestCaptureFromMissingDeviceLeavesSessionEmpty(t *testing.T) {
	logger, _ := test.NewNullLogger()
	session := core.NewSession(logger)

	_, err := session.Capture(NewCamera(missingDevice, logger))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCapture)
	assert.False(t, session.HasImage())
}

type fakeDevice struct {
	opened bool
	closed int
}

func (d *fakeDevice) IsOpened() bool        { return d.opened }
func (d *fakeDevice) Read(m *gocv.Mat) bool { return false }
func (d *fakeDevice) Close() error {
	d.closed++
	return nil
}

func TestOpenReleasesDeviceOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		opened bool
		err    error
	}{
		{"open error", false, errors.New("Error opening device: 3")},
		{"not opened", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			dev := &fakeDevice{opened: tt.opened}
			cam := NewCamera(3, logger)
			cam.openDevice = func(int) (captureDevice, error) { return dev, tt.err }

			reader, err := cam.Open()
			require.Error(t, err)
			assert.Nil(t, reader)
			assert.Contains(t, err.Error(), "open capture device 3")
			assert.Equal(t, 1, dev.closed)
		})
	}
}

func TestStreamCloseReleasesDevice(t *testing.T) {
	logger, _ := test.NewNullLogger()
	dev := &fakeDevice{opened: true}
	cam := NewCamera(0, logger)
	cam.openDevice = func(int) (captureDevice, error) { return dev, nil }

	reader, err := cam.Open()
	require.NoError(t, err)

	_, err = reader.ReadFrame()
	assert.ErrorIs(t, err, ErrFrameRead)

	require.NoError(t, reader.Close())
	assert.Equal(t, 1, dev.closed)
}
