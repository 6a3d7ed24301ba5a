// Package wallet provides the wallet connection status that views render
// against. It tracks which watch-only address is connected and notifies
// subscribers on every transition; it never holds keys or signs.
package wallet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

var (
	ErrInvalidAddress    = errors.New("invalid wallet address")
	ErrAlreadyConnected  = errors.New("another wallet is already connected")
	ErrConnectionPending = errors.New("a wallet connection is already in progress")
	ErrConnectionAborted = errors.New("wallet connection aborted")
)

// Status is the connection state of the account.
type Status int

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusConnected
	StatusReconnecting
)

func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusReconnecting:
		return "reconnecting"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Account is a snapshot of the connection.
type Account struct {
	Address     solana.PublicKey
	Status      Status
	SessionID   string
	ConnectedAt time.Time
}

func (a Account) IsConnected() bool { return a.Status == StatusConnected }

func (a Account) IsDisconnected() bool { return a.Status == StatusDisconnected }

// IsConnecting reports a connection in progress, including reconnects.
// Both IsConnected and IsDisconnected are false in that case.
func (a Account) IsConnecting() bool {
	return a.Status == StatusConnecting || a.Status == StatusReconnecting
}

// ParseAddress decodes a base58 Solana address.
func ParseAddress(address string) (solana.PublicKey, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return solana.PublicKey{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	raw, err := base58.Decode(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, fmt.Errorf("%w: decoded %d bytes, want %d", ErrInvalidAddress, len(raw), solana.PublicKeyLength)
	}

	pubKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return pubKey, nil
}

// ShortAddress renders an address as "abcd...wxyz".
func ShortAddress(address string) string {
	if len(address) <= 8 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:4], address[len(address)-4:])
}
