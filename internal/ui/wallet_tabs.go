package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"swapdesk/internal/wallet"
)

// WalletTabs is the quick-switch bar of saved wallets.
type WalletTabs struct {
	container      *fyne.Container
	tabs           map[string]*widget.Button
	onSwitch       func(string)
	selectedWallet string
}

// NewWalletTabs follows the connector so the connected wallet stays highlighted.
func NewWalletTabs(connector *wallet.Connector) *WalletTabs {
	wt := &WalletTabs{
		container: container.NewHBox(),
		tabs:      make(map[string]*widget.Button),
	}
	connector.Subscribe(func(account wallet.Account) {
		if account.IsConnected() {
			wt.SetSelectedWallet(account.Address.String())
		} else if !account.IsConnecting() {
			wt.SetSelectedWallet("")
		}
	})
	return wt
}

// Update refreshes the wallet tabs with the current list of wallets
func (wt *WalletTabs) Update(wallets []string, labels map[string]string) {
	wt.container.RemoveAll()
	wt.tabs = make(map[string]*widget.Button)

	if len(wallets) == 0 {
		wt.container.Add(widget.NewLabel("No wallets saved"))
		return
	}

	for _, pubKey := range wallets {
		pubKey := pubKey
		displayName := formatWalletDisplay(pubKey, labels[pubKey])

		tab := widget.NewButton(displayName, func() {
			if wt.onSwitch != nil {
				wt.onSwitch(pubKey)
			}
		})

		wt.tabs[pubKey] = tab
		wt.container.Add(tab)
	}

	wt.SetSelectedWallet(wt.selectedWallet)
	wt.container.Refresh()
}

func formatWalletDisplay(pubKey, label string) string {
	if label != "" {
		return label
	}
	if len(pubKey) <= 10 {
		return pubKey
	}
	return pubKey[:6] + "..." + pubKey[len(pubKey)-4:]
}

// SetSelectedWallet highlights the tab of walletID; empty clears the highlight.
func (wt *WalletTabs) SetSelectedWallet(walletID string) {
	wt.selectedWallet = walletID

	for id, tab := range wt.tabs {
		if id == walletID {
			tab.Importance = widget.HighImportance
		} else {
			tab.Importance = widget.MediumImportance
		}
		tab.Refresh()
	}
}

// Container returns the underlying container
func (wt *WalletTabs) Container() *fyne.Container {
	return wt.container
}
