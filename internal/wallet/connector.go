package wallet

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type listener struct {
	id int
	fn func(Account)
}

// Connector owns the account state. All methods are safe for concurrent use;
// listeners are called outside the lock, in subscription order.
type Connector struct {
	mu        sync.Mutex
	account   Account
	listeners []listener
	nextID    int
	attempt   int
	log       *zap.Logger
}

func NewConnector(log *zap.Logger) *Connector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Connector{log: log}
}

// Account returns the current snapshot.
func (c *Connector) Account() Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.account
}

// Subscribe registers fn for every state transition and returns a function
// that removes it.
func (c *Connector) Subscribe(fn func(Account)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Connect links the given address. Connecting the address that is already
// connected is a no-op; a different one returns ErrAlreadyConnected, and any
// call made while another connection is pending returns ErrConnectionPending.
func (c *Connector) Connect(ctx context.Context, address string) error {
	return c.connect(ctx, address, StatusConnecting)
}

// Reconnect is Connect for a restored session; the transient state is
// StatusReconnecting.
func (c *Connector) Reconnect(ctx context.Context, address string) error {
	return c.connect(ctx, address, StatusReconnecting)
}

func (c *Connector) connect(ctx context.Context, address string, pending Status) error {
	c.mu.Lock()
	current := c.account
	switch {
	case current.IsConnected():
		c.mu.Unlock()
		if current.Address.String() == strings.TrimSpace(address) {
			return nil
		}
		return ErrAlreadyConnected
	case current.IsConnecting():
		c.mu.Unlock()
		return ErrConnectionPending
	}
	c.attempt++
	attempt := c.attempt
	next := Account{Status: pending}
	fns := c.setLocked(next)
	c.mu.Unlock()
	c.notify(next, fns)

	pubKey, err := ParseAddress(address)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.log.Warn("wallet connection failed", zap.String("address", address), zap.Error(err))
		c.finish(attempt, Account{Status: StatusDisconnected})
		return err
	}

	if !c.finish(attempt, Account{
		Address:     pubKey,
		Status:      StatusConnected,
		SessionID:   uuid.NewString(),
		ConnectedAt: time.Now(),
	}) {
		c.log.Warn("wallet connection aborted", zap.String("address", address))
		return ErrConnectionAborted
	}
	return nil
}

// finish completes the pending attempt unless a Disconnect superseded it.
func (c *Connector) finish(attempt int, next Account) bool {
	c.mu.Lock()
	if c.attempt != attempt || !c.account.IsConnecting() {
		c.mu.Unlock()
		return false
	}
	fns := c.setLocked(next)
	c.mu.Unlock()
	c.notify(next, fns)
	return true
}

// Disconnect drops the connection, or aborts a pending one. It does nothing
// when already disconnected.
func (c *Connector) Disconnect() {
	c.mu.Lock()
	if c.account.IsDisconnected() {
		c.mu.Unlock()
		return
	}
	next := Account{Status: StatusDisconnected}
	fns := c.setLocked(next)
	c.mu.Unlock()
	c.notify(next, fns)
}

// Address returns the connected public key, or the zero key when not connected.
func (c *Connector) Address() solana.PublicKey {
	account := c.Account()
	if !account.IsConnected() {
		return solana.PublicKey{}
	}
	return account.Address
}

// setLocked stores next and snapshots the listeners. c.mu must be held.
func (c *Connector) setLocked(next Account) []func(Account) {
	c.account = next
	fns := make([]func(Account), len(c.listeners))
	for i, l := range c.listeners {
		fns[i] = l.fn
	}
	return fns
}

func (c *Connector) notify(next Account, fns []func(Account)) {
	fields := []zap.Field{zap.Stringer("status", next.Status)}
	if next.IsConnected() {
		fields = append(fields,
			zap.String("address", next.Address.String()),
			zap.String("session", next.SessionID))
	}
	c.log.Debug("wallet status changed", fields...)

	for _, fn := range fns {
		fn(next)
	}
}
