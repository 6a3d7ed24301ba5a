//go:build js && wasm
// +build js,wasm

package storage

import (
	"encoding/json"

	"fyne.io/fyne/v2"
)

// PrefWalletStorage implements WalletStorage for WASM using Preferences.
type PrefWalletStorage struct {
	app fyne.App
}

// NewWalletStorage ignores dir; the browser build has no filesystem.
func NewWalletStorage(app fyne.App, dir string) WalletStorage {
	return &PrefWalletStorage{app: app}
}

const walletMapKey = "walletMap"

func (ps *PrefWalletStorage) SaveWallet(pubKey, label string) error {
	wallets, err := ps.LoadWallets()
	if err != nil {
		return err
	}
	wallets[pubKey] = label
	return ps.store(wallets)
}

// LoadWallets retrieves the wallet map from Preferences.
func (ps *PrefWalletStorage) LoadWallets() (map[string]string, error) {
	wallets := make(map[string]string)
	stored := ps.app.Preferences().String(walletMapKey)
	if stored != "" {
		if err := json.Unmarshal([]byte(stored), &wallets); err != nil {
			return nil, err
		}
	}
	return wallets, nil
}

func (ps *PrefWalletStorage) RemoveWallet(pubKey string) error {
	wallets, err := ps.LoadWallets()
	if err != nil {
		return err
	}
	delete(wallets, pubKey)
	return ps.store(wallets)
}

func (ps *PrefWalletStorage) store(wallets map[string]string) error {
	data, err := json.Marshal(wallets)
	if err != nil {
		return err
	}
	ps.app.Preferences().SetString(walletMapKey, string(data))
	return nil
}
