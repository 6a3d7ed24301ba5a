package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"swapdesk/internal/storage"
	"swapdesk/internal/wallet"
)

// WalletManager keeps the watch-only wallet book and connects its entries.
type WalletManager struct {
	window        fyne.Window
	storage       storage.WalletStorage
	connector     *wallet.Connector
	walletTabs    *WalletTabs
	log           *zap.Logger
	walletList    *widget.List
	wallets       []string
	labels        map[string]string
	currentWallet *widget.Label
}

func NewWalletManager(window fyne.Window, store storage.WalletStorage, connector *wallet.Connector, walletTabs *WalletTabs, log *zap.Logger) *WalletManager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &WalletManager{
		window:        window,
		storage:       store,
		connector:     connector,
		walletTabs:    walletTabs,
		log:           log,
		labels:        make(map[string]string),
		currentWallet: widget.NewLabel("No wallet connected"),
	}
	if walletTabs != nil {
		walletTabs.onSwitch = m.ConnectWallet
	}

	connector.Subscribe(m.onAccount)
	m.onAccount(connector.Account())

	if err := m.loadSavedWallets(); err != nil {
		log.Error("failed to load saved wallets", zap.Error(err))
	}
	return m
}

func (m *WalletManager) NewWalletScreen() fyne.CanvasObject {
	m.walletList = widget.NewList(
		func() int { return len(m.wallets) },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id >= len(m.wallets) {
				return
			}
			item.(*widget.Label).SetText(m.displayName(m.wallets[id]))
		},
	)

	m.walletList.OnSelected = func(id widget.ListItemID) {
		if id < len(m.wallets) {
			m.ConnectWallet(m.wallets[id])
		}
		m.walletList.UnselectAll()
	}

	addressEntry := widget.NewEntry()
	addressEntry.SetPlaceHolder("Wallet address (base58)")

	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Label (optional)")

	addButton := widget.NewButton("Add and Connect", func() {
		if err := m.addWallet(addressEntry.Text, labelEntry.Text); err != nil {
			dialog.ShowError(err, m.window)
			return
		}
		addressEntry.SetText("")
		labelEntry.SetText("")
	})
	addButton.Importance = widget.HighImportance

	disconnectButton := widget.NewButton("Disconnect", m.connector.Disconnect)

	removeButton := widget.NewButton("Remove Connected Wallet", func() {
		account := m.connector.Account()
		if !account.IsConnected() {
			dialog.ShowInformation("No wallet", "Connect the wallet you want to remove first", m.window)
			return
		}
		pubKey := account.Address.String()
		dialog.ShowConfirm("Remove wallet", "Remove "+m.displayName(pubKey)+" from saved wallets?", func(ok bool) {
			if !ok {
				return
			}
			if err := m.removeWallet(pubKey); err != nil {
				dialog.ShowError(err, m.window)
			}
		}, m.window)
	})

	controls := container.NewVBox(
		widget.NewLabel("Wallet Management"),
		m.currentWallet,
		addressEntry,
		labelEntry,
		addButton,
		container.NewGridWithColumns(2, disconnectButton, removeButton),
		widget.NewSeparator(),
		widget.NewLabel("Saved wallets"),
	)

	return container.NewBorder(controls, nil, nil, nil, m.walletList)
}

func (m *WalletManager) GetWallets() []string {
	return m.wallets
}

// ConnectWallet connects pubKey, switching away from any other connected wallet.
func (m *WalletManager) ConnectWallet(pubKey string) {
	account := m.connector.Account()
	if account.IsConnected() && account.Address.String() != pubKey {
		m.connector.Disconnect()
	}
	if err := m.connector.Connect(context.Background(), pubKey); err != nil {
		m.log.Warn("connect failed", zap.String("wallet", pubKey), zap.Error(err))
		if m.window != nil {
			dialog.ShowError(fmt.Errorf("failed to connect wallet: %w", err), m.window)
		}
	}
}

func (m *WalletManager) loadSavedWallets() error {
	saved, err := m.storage.LoadWallets()
	if err != nil {
		return err
	}
	m.labels = saved
	m.wallets = storage.SortedKeys(saved)
	m.refresh()
	return nil
}

func (m *WalletManager) addWallet(address, label string) error {
	pubKey, err := wallet.ParseAddress(address)
	if err != nil {
		return err
	}
	key := pubKey.String()
	label = strings.TrimSpace(label)

	if err := m.storage.SaveWallet(key, label); err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	if err := m.loadSavedWallets(); err != nil {
		return err
	}
	m.log.Info("wallet saved", zap.String("wallet", key))

	m.ConnectWallet(key)
	return nil
}

func (m *WalletManager) removeWallet(pubKey string) error {
	if m.connector.Account().Address.String() == pubKey {
		m.connector.Disconnect()
	}
	if err := m.storage.RemoveWallet(pubKey); err != nil {
		return err
	}
	return m.loadSavedWallets()
}

func (m *WalletManager) displayName(pubKey string) string {
	short := wallet.ShortAddress(pubKey)
	if label := m.labels[pubKey]; label != "" {
		return label + " (" + short + ")"
	}
	return short
}

func (m *WalletManager) refresh() {
	if m.walletList != nil {
		m.walletList.Refresh()
	}
	if m.walletTabs != nil {
		m.walletTabs.Update(m.wallets, m.labels)
	}
}

func (m *WalletManager) onAccount(account wallet.Account) {
	switch {
	case account.IsConnected():
		m.currentWallet.SetText("Connected wallet: " + account.Address.String())
	case account.IsConnecting():
		m.currentWallet.SetText("Connecting...")
	default:
		m.currentWallet.SetText("No wallet connected")
	}
}
