package config

import (
	"flag"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := Register(fs)
	require.NoError(t, fs.Parse(args))
	return c, c.Resolve()
}

func TestDefaults(t *testing.T) {
	c, err := parse(t)
	require.NoError(t, err)

	assert.False(t, c.Debug)
	assert.Equal(t, 0, c.CameraID)
	assert.Equal(t, 1200, c.WindowWidth)
	assert.Equal(t, 800, c.WindowHeight)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.AnnotationColor)
	assert.Empty(t, c.OpenPath)
}

func TestFlags(t *testing.T) {
	c, err := parse(t, "-debug", "-camera", "2", "-annotation-color", "#00ff80", "-open", "cat.png")
	require.NoError(t, err)

	assert.True(t, c.Debug)
	assert.Equal(t, 2, c.CameraID)
	assert.Equal(t, color.RGBA{G: 255, B: 128, A: 255}, c.AnnotationColor)
	assert.Equal(t, "cat.png", c.OpenPath)
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad colour", []string{"-annotation-color", "red"}},
		{"negative camera", []string{"-camera", "-1"}},
		{"zero width", []string{"-width", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv("IMGEDIT_CAMERA", "3")
	t.Setenv("IMGEDIT_ANNOTATION_COLOR", "#0000ff")

	c, err := Load([]string{"-width", "640"})
	require.NoError(t, err)

	assert.Equal(t, 3, c.CameraID)
	assert.Equal(t, 640, c.WindowWidth)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, c.AnnotationColor)
}
