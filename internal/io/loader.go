// Image file acquisition: turns a user-chosen path into the raw encoded bytes
package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var supportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}

// ImageLoader reads image files from disk without decoding them
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// ReadImageFile returns the encoded contents of the file at path
func (il *ImageLoader) ReadImageFile(path string) ([]byte, error) {
	il.logger.WithField("filepath", path).Debug("Reading image file")

	if !IsSupportedImageFormat(path) {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image file is empty: %s", path)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"bytes":    len(data),
	}).Info("Image file read")

	return data, nil
}

// IsSupportedImageFormat reports whether path has one of the accepted extensions
func IsSupportedImageFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedExtensions {
		if ext == format {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the accepted file extensions, dot included
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}
