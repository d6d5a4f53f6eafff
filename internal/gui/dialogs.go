// Modal prompts for operator parameters
package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"basic-image-editor/internal/editor"
)

var _ editor.Prompter = (*DialogPrompter)(nil)

// DialogPrompter asks for numbers with form dialogs on the given window
type DialogPrompter struct {
	window fyne.Window
}

func NewDialogPrompter(window fyne.Window) *DialogPrompter {
	return &DialogPrompter{window: window}
}

func (p *DialogPrompter) AskKernelSize(done func(int, bool)) {
	entry := newIntEntry("5", 1)
	items := []*widget.FormItem{
		widget.NewFormItem("Kernel size (odd)", entry),
	}

	dialog.ShowForm("Box Blur", "Apply", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			done(0, false)
			return
		}
		size, _ := parseInt(entry.Text)
		done(size, true)
	}, p.window)
}

func (p *DialogPrompter) AskRectangle(done func(editor.Rect, bool)) {
	x1, y1 := newIntEntry("X1", 0), newIntEntry("Y1", 0)
	x2, y2 := newIntEntry("X2", 0), newIntEntry("Y2", 0)
	for _, e := range []*widget.Entry{x1, y1, x2, y2} {
		e.Validator = func(s string) error {
			_, err := parseInt(s)
			return err
		}
	}

	items := []*widget.FormItem{
		widget.NewFormItem("X1", x1),
		widget.NewFormItem("Y1", y1),
		widget.NewFormItem("X2", x2),
		widget.NewFormItem("Y2", y2),
	}

	dialog.ShowForm("Draw Rectangle", "Draw", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			done(editor.Rect{}, false)
			return
		}
		r := editor.Rect{}
		r.X1, _ = parseInt(x1.Text)
		r.Y1, _ = parseInt(y1.Text)
		r.X2, _ = parseInt(x2.Text)
		r.Y2, _ = parseInt(y2.Text)
		done(r, true)
	}, p.window)
}

// newIntEntry returns an entry that only validates integers >= min
func newIntEntry(placeholder string, min int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Validator = func(s string) error {
		v, err := parseInt(s)
		if err != nil {
			return err
		}
		if v < min {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
	return entry
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("enter a whole number")
	}
	return v, nil
}
