package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type Sidebar struct {
	widget.BaseWidget
	OnSwapClicked    func()
	OnWalletsClicked func()
}

func NewSidebar() *Sidebar {
	s := &Sidebar{}
	s.ExtendBaseWidget(s)
	return s
}

func (s *Sidebar) CreateRenderer() fyne.WidgetRenderer {
	swapBtn := widget.NewButtonWithIcon("Swap", theme.ViewRefreshIcon(), func() {
		if s.OnSwapClicked != nil {
			s.OnSwapClicked()
		}
	})
	walletsBtn := widget.NewButtonWithIcon("Wallets", theme.AccountIcon(), func() {
		if s.OnWalletsClicked != nil {
			s.OnWalletsClicked()
		}
	})

	content := container.NewVBox(swapBtn, walletsBtn)
	return widget.NewSimpleRenderer(content)
}
