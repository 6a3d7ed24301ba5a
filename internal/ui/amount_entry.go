package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"swapdesk/internal/swap"
)

// amountEntry accepts the characters a number input accepts and nothing
// else. It does not validate the resulting text.
type amountEntry struct {
	widget.Entry
	side swap.Side
}

func newAmountEntry(side swap.Side) *amountEntry {
	e := &amountEntry{side: side}
	e.ExtendBaseWidget(e)
	e.SetText(swap.DefaultAmount)
	return e
}

func isNumberRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		return true
	}
	return false
}

func (e *amountEntry) TypedRune(r rune) {
	if !isNumberRune(r) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedShortcut filters pasted text through TypedRune.
func (e *amountEntry) TypedShortcut(s fyne.Shortcut) {
	paste, ok := s.(*fyne.ShortcutPaste)
	if !ok || paste.Clipboard == nil {
		e.Entry.TypedShortcut(s)
		return
	}
	for _, r := range paste.Clipboard.Content() {
		e.TypedRune(r)
	}
}

func (e *amountEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
