// Menu handler for application actions
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"basic-image-editor/internal/io"
)

// MenuHandler builds the main menu and the file chooser
type MenuHandler struct {
	window fyne.Window
	logger logrus.FieldLogger

	onFileChosen func(string)
	onSnapshot   func()
	onReset      func()
}

func NewMenuHandler(window fyne.Window, logger logrus.FieldLogger) *MenuHandler {
	return &MenuHandler{
		window: window,
		logger: logger,
	}
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mh.OpenImage),
		fyne.NewMenuItem("Take Snapshot", func() { call(mh.onSnapshot) }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo Changes", func() { call(mh.onReset) }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
}

// OpenImage shows the file chooser and reports the chosen path
func (mh *MenuHandler) OpenImage() {
	mh.logger.Debug("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.logger.WithError(err).Error("File dialog error")
			dialog.ShowError(err, mh.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if mh.onFileChosen != nil {
			mh.onFileChosen(path)
		}
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) showAbout() {
	content := container.NewVBox(
		widget.NewLabel(AppTitle),
		widget.NewSeparator(),
		widget.NewLabel("Load or capture an image, isolate a colour channel,"),
		widget.NewLabel("invert it, blur it or mark a rectangle on it."),
		widget.NewLabel("Undo Changes always returns to the loaded image."),
		widget.NewSeparator(),
		widget.NewLabel("Built with Go, Fyne and OpenCV"),
	)

	aboutDialog := dialog.NewCustom("About", "Close", content, mh.window)
	aboutDialog.Show()
}

func (mh *MenuHandler) SetCallbacks(onFileChosen func(string), onSnapshot, onReset func()) {
	mh.onFileChosen = onFileChosen
	mh.onSnapshot = onSnapshot
	mh.onReset = onReset
}
