// Package config collects the application settings from flags, the
// environment and an optional .env file.
//
// Every flag can also be set through an IMGEDIT_ prefixed environment
// variable, e.g. IMGEDIT_CAMERA=1 or IMGEDIT_ANNOTATION_COLOR=#00ff00.
package config

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/jamiealquiza/envy"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
)

const EnvPrefix = "IMGEDIT"

type Config struct {
	Debug           bool
	CameraID        int
	WindowWidth     int
	WindowHeight    int
	AnnotationHex   string
	AnnotationColor color.RGBA
	OpenPath        string

	// DotEnvErr holds the result of loading .env; a missing file is not fatal
	DotEnvErr error
}

// Register binds the configuration flags to fs with their defaults
func Register(fs *flag.FlagSet) *Config {
	c := &Config{}
	fs.BoolVar(&c.Debug, "debug", false, "enable debug mode with verbose logging")
	fs.IntVar(&c.CameraID, "camera", 0, "index of the capture device used for snapshots")
	fs.IntVar(&c.WindowWidth, "width", 1200, "initial window width")
	fs.IntVar(&c.WindowHeight, "height", 800, "initial window height")
	fs.StringVar(&c.AnnotationHex, "annotation-color", "#ff0000", "rectangle colour as #rrggbb")
	fs.StringVar(&c.OpenPath, "open", "", "image file to open at startup")
	return c
}

// Resolve validates the parsed values and derives the typed fields
func (c *Config) Resolve() error {
	if c.CameraID < 0 {
		return fmt.Errorf("camera index must not be negative: %d", c.CameraID)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}

	parsed, err := ParseColor(c.AnnotationHex)
	if err != nil {
		return err
	}
	c.AnnotationColor = parsed
	return nil
}

// ParseColor parses a #rrggbb string into an opaque colour
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid annotation colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Load reads .env, registers the flags on the process-wide flag set, applies
// IMGEDIT_* environment overrides and parses args. It may only be called once.
func Load(args []string) (*Config, error) {
	dotEnvErr := godotenv.Load()

	c := Register(flag.CommandLine)
	envy.Parse(EnvPrefix)
	if err := flag.CommandLine.Parse(args); err != nil {
		return nil, err
	}

	c.DotEnvErr = dotEnvErr
	if err := c.Resolve(); err != nil {
		return nil, err
	}
	return c, nil
}
