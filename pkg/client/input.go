package client

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpCommand = "/help"

type InputSection struct {
	View   *tview.InputField
	submit func(text string) bool
	help   func()
}

// NewInputSection builds the composer. submit reports whether the text was
// accepted, in which case the field is cleared.
func NewInputSection(submit func(text string) bool, help func()) *InputSection {
	inputView := tview.NewInputField()
	inputView.SetPlaceholder("Send a message or type /help").
		SetPlaceholderTextColor(tcell.ColorDeepSkyBlue)
	inputView.SetLabel("> ").SetLabelColor(tcell.ColorDeepSkyBlue)
	inputView.SetFieldTextColor(tcell.ColorWhite).SetFieldBackgroundColor(tcell.ColorDarkSlateGray)

	inputSection := &InputSection{View: inputView, submit: submit, help: help}
	inputView.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			inputSection.HandleInput(inputView.GetText())
		}
	})
	return inputSection
}

func (input *InputSection) HandleInput(text string) {
	if strings.TrimSpace(text) == helpCommand {
		input.help()
		input.View.SetText("")
		return
	}
	if input.submit(text) {
		input.View.SetText("")
	}
}
