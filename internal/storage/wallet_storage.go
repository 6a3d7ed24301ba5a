package storage

import "sort"

// WalletStorage persists the watch-only wallet book as pubkey -> label.
type WalletStorage interface {
	SaveWallet(pubKey, label string) error
	LoadWallets() (map[string]string, error)
	RemoveWallet(pubKey string) error
}

// SortedKeys returns the public keys of wallets in lexical order.
func SortedKeys(wallets map[string]string) []string {
	keys := make([]string, 0, len(wallets))
	for k := range wallets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
