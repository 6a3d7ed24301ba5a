package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"swapdesk/internal/wallet"
)

const lastWalletKey = "lastWallet"

// RememberSession keeps the last connected wallet in prefs.
func RememberSession(prefs fyne.Preferences, connector *wallet.Connector) func() {
	return connector.Subscribe(func(account wallet.Account) {
		switch {
		case account.IsConnected():
			prefs.SetString(lastWalletKey, account.Address.String())
		case account.IsDisconnected():
			prefs.RemoveValue(lastWalletKey)
		}
	})
}

// RestoreSession reconnects the wallet remembered by RememberSession, if any.
func RestoreSession(ctx context.Context, prefs fyne.Preferences, connector *wallet.Connector, log *zap.Logger) error {
	address := prefs.String(lastWalletKey)
	if address == "" {
		return nil
	}
	log.Info("restoring wallet session", zap.String("wallet", address))
	return connector.Reconnect(ctx, address)
}
