package ui

import (
	_ "embed"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

//go:embed assets/hero.svg
var heroSVG []byte

// heroResource is the illustration shown while no wallet is connected.
var heroResource = fyne.NewStaticResource("hero.svg", heroSVG)

func newHeading(text string, size float32) *canvas.Text {
	heading := canvas.NewText(text, theme.ForegroundColor())
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter
	heading.TextSize = size
	return heading
}

// newCard wraps content in a rounded outline.
func newCard(content fyne.CanvasObject) *fyne.Container {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = theme.DisabledColor()
	border.StrokeWidth = 1
	border.CornerRadius = 16
	return container.NewStack(border, container.NewPadded(content))
}
