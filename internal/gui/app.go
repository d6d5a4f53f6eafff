// Main application window: control panel on the left, image canvas on the right
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"basic-image-editor/internal/capture"
	"basic-image-editor/internal/config"
	"basic-image-editor/internal/core"
	"basic-image-editor/internal/editor"
	"basic-image-editor/internal/io"
)

const AppTitle = "Basic Image Editor"

var _ editor.Surface = (*Application)(nil)

// Application represents the main application window and implements the
// editor's presentation surface
type Application struct {
	app    fyne.App
	window fyne.Window
	logger logrus.FieldLogger
	config *config.Config

	// Core components
	session *core.Session
	editor  *editor.Editor

	// GUI components
	canvas       *ImageCanvas
	controlPanel *ControlPanel
	menuHandler  *MenuHandler
	statusLabel  *widget.Label
}

func NewApplication(app fyne.App, cfg *config.Config, logger logrus.FieldLogger) *Application {
	window := app.NewWindow(AppTitle)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()

	a := &Application{
		app:    app,
		window: window,
		logger: logger,
		config: cfg,
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	return a
}

func (a *Application) initializeCore() {
	a.session = core.NewSession(a.logger, core.WithAnnotationColor(a.config.AnnotationColor))
	a.editor = editor.New(
		a.session,
		io.NewImageLoader(a.logger),
		capture.NewCamera(a.config.CameraID, a.logger),
		NewDialogPrompter(a.window),
		a,
		a.logger,
	)
}

func (a *Application) initializeGUI() {
	a.canvas = NewImageCanvas(a.logger)
	a.controlPanel = NewControlPanel()
	a.menuHandler = NewMenuHandler(a.window, a.logger)
	a.statusLabel = widget.NewLabel("Open an image or take a snapshot to begin")
}

func (a *Application) setupLayout() {
	left := container.NewPadded(a.controlPanel.GetContainer())
	center := container.NewPadded(a.canvas)

	content := container.NewBorder(
		nil,           // top
		a.statusLabel, // bottom
		left,          // left
		nil,           // right
		center,
	)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(content)
}

func (a *Application) setupCallbacks() {
	// The editor reports every failure to the surface itself, so returned
	// errors are only needed by tests and are dropped here.
	a.controlPanel.SetCallbacks(
		a.menuHandler.OpenImage,
		func() { _ = a.editor.Capture() },
		func(ch string) { _ = a.editor.ShowChannel(ch) },
		func() { _ = a.editor.Negative() },
		func() { _ = a.editor.Blur() },
		func() { _ = a.editor.Rectangle() },
		func() { _ = a.editor.Reset() },
	)

	a.menuHandler.SetCallbacks(
		func(path string) { _ = a.editor.OpenFile(path) },
		func() { _ = a.editor.Capture() },
		func() { _ = a.editor.Reset() },
	)

	a.canvas.SetResizeCallback(a.editor.Redraw)
}

// OpenFile loads path as if it had been chosen in the file dialog
func (a *Application) OpenFile(path string) error {
	return a.editor.OpenFile(path)
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")
	a.window.ShowAndRun()
}

func (a *Application) Present(img image.Image) {
	a.canvas.SetImage(img)
}

func (a *Application) ViewportSize() (int, int) {
	return a.canvas.PixelSize()
}

func (a *Application) ShowError(err error) {
	dialog.ShowError(err, a.window)
}

func (a *Application) ShowWarning(message string) {
	dialog.ShowInformation("Warning", message, a.window)
}

func (a *Application) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, a.window)
}

func (a *Application) SetStatus(message string) {
	a.statusLabel.SetText(message)
}
