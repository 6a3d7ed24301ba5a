//go:build !js
// +build !js

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
)

const walletExt = ".wallet"

// FileWalletStorage keeps one <pubkey>.wallet file per wallet, holding its label.
type FileWalletStorage struct {
	dir string
}

// NewWalletStorage stores wallets under dir, or under the app's storage
// root when dir is empty.
func NewWalletStorage(app fyne.App, dir string) WalletStorage {
	if dir == "" {
		dir = filepath.Join(app.Storage().RootURI().Path(), "wallets")
	}
	return NewFileWalletStorage(dir)
}

func NewFileWalletStorage(dir string) *FileWalletStorage {
	return &FileWalletStorage{dir: dir}
}

func (fs *FileWalletStorage) walletPath(pubKey string) string {
	return filepath.Join(fs.dir, pubKey+walletExt)
}

func (fs *FileWalletStorage) SaveWallet(pubKey, label string) error {
	if err := os.MkdirAll(fs.dir, 0700); err != nil {
		return fmt.Errorf("failed to create wallet directory: %w", err)
	}
	return os.WriteFile(fs.walletPath(pubKey), []byte(label), 0600)
}

func (fs *FileWalletStorage) LoadWallets() (map[string]string, error) {
	wallets := make(map[string]string)
	files, err := os.ReadDir(fs.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return wallets, nil
		}
		return nil, fmt.Errorf("failed to read wallet directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != walletExt {
			continue
		}
		content, err := os.ReadFile(filepath.Join(fs.dir, file.Name()))
		if err != nil {
			continue
		}
		pubKey := strings.TrimSuffix(file.Name(), walletExt)
		wallets[pubKey] = strings.TrimSpace(string(content))
	}
	return wallets, nil
}

func (fs *FileWalletStorage) RemoveWallet(pubKey string) error {
	err := os.Remove(fs.walletPath(pubKey))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove wallet %s: %w", pubKey, err)
	}
	return nil
}
