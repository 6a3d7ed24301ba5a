package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"swapdesk/internal/wallet"
)

// Header shows the app title and the wallet connect / disconnect controls.
type Header struct {
	widget.BaseWidget
	OnConnectClicked func()

	connector     *wallet.Connector
	title         *canvas.Text
	accountLabel  *widget.Label
	connectBtn    *widget.Button
	disconnectBtn *widget.Button
	unsubscribe   func()
}

func NewHeader(title string, connector *wallet.Connector) *Header {
	h := &Header{
		connector:    connector,
		title:        canvas.NewText(title, theme.ForegroundColor()),
		accountLabel: widget.NewLabel(""),
	}
	h.title.TextStyle = fyne.TextStyle{Bold: true}
	h.title.TextSize = 20

	h.connectBtn = widget.NewButtonWithIcon("Connect Wallet", theme.LoginIcon(), func() {
		if h.OnConnectClicked != nil {
			h.OnConnectClicked()
		}
	})
	h.connectBtn.Importance = widget.HighImportance
	h.disconnectBtn = widget.NewButtonWithIcon("Disconnect", theme.LogoutIcon(), connector.Disconnect)

	h.ExtendBaseWidget(h)
	h.update(connector.Account())
	h.unsubscribe = connector.Subscribe(h.update)
	return h
}

func (h *Header) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, widget.NewSeparator(),
		container.NewPadded(h.title),
		container.NewHBox(h.accountLabel, h.connectBtn, h.disconnectBtn),
	)
	return widget.NewSimpleRenderer(content)
}

func (h *Header) update(account wallet.Account) {
	switch {
	case account.IsConnected():
		h.accountLabel.SetText(wallet.ShortAddress(account.Address.String()))
		h.connectBtn.Hide()
		h.disconnectBtn.Show()
	case account.IsConnecting():
		h.accountLabel.SetText("Connecting...")
		h.connectBtn.Disable()
		h.connectBtn.Show()
		h.disconnectBtn.Hide()
	default:
		h.accountLabel.SetText("")
		h.connectBtn.Enable()
		h.connectBtn.Show()
		h.disconnectBtn.Hide()
	}
}

// Release stops following the connector.
func (h *Header) Release() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}
