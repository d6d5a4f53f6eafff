// Left-hand button column
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var channelOptions = []string{"R (Red)", "G (Green)", "B (Blue)"}

// ControlPanel holds one button per editor action
type ControlPanel struct {
	container *fyne.Container

	openBtn      *widget.Button
	snapshotBtn  *widget.Button
	channelSel   *widget.Select
	channelBtn   *widget.Button
	negativeBtn  *widget.Button
	blurBtn      *widget.Button
	rectangleBtn *widget.Button
	resetBtn     *widget.Button

	// Callbacks
	onOpen      func()
	onSnapshot  func()
	onChannel   func(string)
	onNegative  func()
	onBlur      func()
	onRectangle func()
	onReset     func()
}

func NewControlPanel() *ControlPanel {
	panel := &ControlPanel{}
	panel.initializeUI()
	return panel
}

func (cp *ControlPanel) initializeUI() {
	cp.openBtn = widget.NewButtonWithIcon("Open Image", theme.FolderOpenIcon(), func() { call(cp.onOpen) })
	cp.openBtn.Importance = widget.HighImportance

	cp.snapshotBtn = widget.NewButtonWithIcon("Take Snapshot", theme.MediaPhotoIcon(), func() { call(cp.onSnapshot) })

	cp.channelSel = widget.NewSelect(channelOptions, nil)
	cp.channelSel.PlaceHolder = "Choose channel"

	cp.channelBtn = widget.NewButton("Show Channel", func() {
		if cp.onChannel != nil {
			cp.onChannel(cp.SelectedChannel())
		}
	})
	cp.negativeBtn = widget.NewButton("Negative", func() { call(cp.onNegative) })
	cp.blurBtn = widget.NewButton("Box Blur", func() { call(cp.onBlur) })
	cp.rectangleBtn = widget.NewButton("Draw Rectangle", func() { call(cp.onRectangle) })

	cp.resetBtn = widget.NewButtonWithIcon("Undo Changes", theme.ContentUndoIcon(), func() { call(cp.onReset) })
	cp.resetBtn.Importance = widget.WarningImportance

	cp.container = container.NewVBox(
		widget.NewCard("Image", "", container.NewVBox(cp.openBtn, cp.snapshotBtn)),
		widget.NewCard("Edit", "", container.NewVBox(
			cp.channelSel,
			cp.channelBtn,
			widget.NewSeparator(),
			cp.negativeBtn,
			cp.blurBtn,
			cp.rectangleBtn,
		)),
		layout.NewSpacer(),
		cp.resetBtn,
	)
}

// SelectedChannel returns the channel letter of the current selection, or "" when none
func (cp *ControlPanel) SelectedChannel() string {
	if cp.channelSel.Selected == "" {
		return ""
	}
	return cp.channelSel.Selected[:1]
}

func (cp *ControlPanel) GetContainer() fyne.CanvasObject {
	return cp.container
}

func (cp *ControlPanel) SetCallbacks(
	onOpen func(),
	onSnapshot func(),
	onChannel func(string),
	onNegative func(),
	onBlur func(),
	onRectangle func(),
	onReset func(),
) {
	cp.onOpen = onOpen
	cp.onSnapshot = onSnapshot
	cp.onChannel = onChannel
	cp.onNegative = onNegative
	cp.onBlur = onBlur
	cp.onRectangle = onRectangle
	cp.onReset = onReset
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
