// Package swap holds the state behind the swap form: two legs, each with a
// free-form amount and an optional token. Nothing here quotes, validates or
// submits; the legs are independent.
package swap

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"swapdesk/internal/tokens"
)

type Side string

const (
	Sell Side = "sell"
	Buy  Side = "buy"
)

const (
	DefaultAmount   = "0"
	SelectTokenText = "select a token"
)

// Leg is one side of the swap.
type Leg struct {
	Side   Side
	Amount string
	Token  *tokens.Token
}

// Label is the text shown on the leg's token button.
func (l Leg) Label() string {
	if l.Token == nil {
		return SelectTokenText
	}
	return l.Token.Symbol
}

// Value parses Amount. The form stores whatever was typed, so callers that
// need a number must handle the error.
func (l Leg) Value() (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(l.Amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s amount %q: %w", l.Side, l.Amount, err)
	}
	return v, nil
}

// Form is safe for concurrent use. Change callbacks run outside the lock.
type Form struct {
	mu       sync.Mutex
	legs     map[Side]*Leg
	onChange []func(Leg)
}

func NewForm() *Form {
	f := &Form{}
	f.legs = map[Side]*Leg{
		Sell: {Side: Sell, Amount: DefaultAmount},
		Buy:  {Side: Buy, Amount: DefaultAmount},
	}
	return f
}

// Leg returns a copy of the given side.
func (f *Form) Leg(side Side) Leg {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.mustLeg(side)
}

// SetAmount stores text verbatim.
func (f *Form) SetAmount(side Side, text string) {
	f.update(side, func(l *Leg) { l.Amount = text })
}

func (f *Form) SelectToken(side Side, token tokens.Token) {
	f.update(side, func(l *Leg) { l.Token = &token })
}

// Reset restores both legs to their defaults.
func (f *Form) Reset() {
	f.update(Sell, func(l *Leg) { *l = Leg{Side: Sell, Amount: DefaultAmount} })
	f.update(Buy, func(l *Leg) { *l = Leg{Side: Buy, Amount: DefaultAmount} })
}

// OnChange registers fn for every leg update.
func (f *Form) OnChange(fn func(Leg)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = append(f.onChange, fn)
}

func (f *Form) update(side Side, apply func(*Leg)) {
	f.mu.Lock()
	leg := f.mustLeg(side)
	apply(leg)
	snapshot := *leg
	fns := append(([]func(Leg))(nil), f.onChange...)
	f.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func (f *Form) mustLeg(side Side) *Leg {
	leg, ok := f.legs[side]
	if !ok {
		panic(fmt.Sprintf("swap: unknown side %q", side))
	}
	return leg
}
