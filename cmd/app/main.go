// Basic Image Editor: load or capture an image, apply simple edits, undo back to the original

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"basic-image-editor/internal/config"
	"basic-image-editor/internal/gui"
)

const (
	AppID      = "com.example.basic-image-editor"
	AppVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := initLogger(cfg.Debug)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": cfg.Debug,
		"camera":     cfg.CameraID,
	}).Info("Starting Basic Image Editor")

	if cfg.DotEnvErr != nil {
		logger.WithError(cfg.DotEnvErr).Debug("No .env file loaded")
	}

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.DocumentIcon())

	mainApp := gui.NewApplication(myApp, cfg, logger)
	if cfg.OpenPath != "" {
		if err := mainApp.OpenFile(cfg.OpenPath); err != nil {
			logger.WithError(err).WithField("filepath", cfg.OpenPath).Error("Failed to open startup image")
		}
	}
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
