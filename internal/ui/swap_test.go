package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swapdesk/internal/swap"
	"swapdesk/internal/tokens"
	"swapdesk/internal/wallet"
)

const (
	addrSOL  = "So11111111111111111111111111111111111111112"
	addrUSDC = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
)

func newTestWindow(t *testing.T) fyne.Window {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)
	return w
}

func offlineRegistry() *tokens.Registry {
	return tokens.NewRegistry("", time.Hour, time.Second, nil)
}

func newTestPage(t *testing.T) (*SwapPage, *wallet.Connector) {
	t.Helper()
	w := newTestWindow(t)
	c := wallet.NewConnector(nil)
	p := NewSwapPage(w, c, offlineRegistry(), nil)
	w.SetContent(p.Content())
	return p, c
}

type fakeClipboard string

func (c fakeClipboard) Content() string { return string(c) }
func (c fakeClipboard) SetContent(string) {}

func TestSwapPageDisconnectedShowsHero(t *testing.T) {
	p, _ := newTestPage(t)

	assert.True(t, p.HeroVisible())
	assert.False(t, p.FormVisible())
}

func TestSwapPageConnectedShowsForm(t *testing.T) {
	p, c := newTestPage(t)
	require.NoError(t, c.Connect(context.Background(), addrSOL))

	assert.False(t, p.HeroVisible())
	assert.True(t, p.FormVisible())

	require.Len(t, p.entries, 2)
	assert.Equal(t, swap.Sell, p.entries[swap.Sell].side)
	assert.Equal(t, swap.Buy, p.entries[swap.Buy].side)
	assert.Equal(t, "0", p.entries[swap.Sell].Text)
	assert.Equal(t, "0", p.entries[swap.Buy].Text)

	require.Len(t, p.tokenBtns, 2)
	for _, btn := range p.tokenBtns {
		assert.Equal(t, "select a token", btn.Text)
	}
	assert.Equal(t, "Get Started", p.ctaButton.Text)
}

func TestSwapPageHidesBothBranchesWhileConnecting(t *testing.T) {
	p, c := newTestPage(t)

	var checked bool
	c.Subscribe(func(a wallet.Account) {
		if a.IsConnecting() {
			checked = true
			assert.False(t, p.HeroVisible())
			assert.False(t, p.FormVisible())
		}
	})

	require.NoError(t, c.Connect(context.Background(), addrSOL))
	assert.True(t, checked)
}

func TestSwapPageReturnsToHeroOnDisconnect(t *testing.T) {
	p, c := newTestPage(t)
	require.NoError(t, c.Connect(context.Background(), addrSOL))
	c.Disconnect()

	assert.True(t, p.HeroVisible())
	assert.False(t, p.FormVisible())
}

func TestSwapPageFailedConnectKeepsHero(t *testing.T) {
	p, c := newTestPage(t)
	require.Error(t, c.Connect(context.Background(), "nope"))

	assert.True(t, p.HeroVisible())
	assert.False(t, p.FormVisible())
}

func TestAmountEntriesAcceptNumericTextOnly(t *testing.T) {
	p, c := newTestPage(t)
	require.NoError(t, c.Connect(context.Background(), addrSOL))

	sell := p.entries[swap.Sell]
	sell.SetText("")
	test.Type(sell, "1a2.5x")

	assert.Equal(t, "12.5", sell.Text)
	assert.Equal(t, "12.5", p.Form().Leg(swap.Sell).Amount)
	assert.Equal(t, "0", p.Form().Leg(swap.Buy).Amount, "no cross-field effect")
	assert.Equal(t, "0", p.entries[swap.Buy].Text)
}

func TestAmountEntryDoesNotValidate(t *testing.T) {
	p, c := newTestPage(t)
	require.NoError(t, c.Connect(context.Background(), addrSOL))

	buy := p.entries[swap.Buy]
	buy.SetText("")
	test.Type(buy, "-1e-..+")

	assert.Equal(t, "-1e-..+", buy.Text)
	assert.Equal(t, "-1e-..+", p.Form().Leg(swap.Buy).Amount)
}

func TestAmountEntryFiltersPaste(t *testing.T) {
	w := newTestWindow(t)
	e := newAmountEntry(swap.Sell)
	w.SetContent(e)
	e.SetText("")

	e.TypedShortcut(&fyne.ShortcutPaste{Clipboard: fakeClipboard("4 x 2")})
	assert.Equal(t, "42", e.Text)
}

func TestCallToActionDoesNothing(t *testing.T) {
	p, c := newTestPage(t)
	require.NoError(t, c.Connect(context.Background(), addrSOL))
	p.Form().SetAmount(swap.Sell, "5")

	sell, buy := p.Form().Leg(swap.Sell), p.Form().Leg(swap.Buy)
	account := c.Account()

	test.Tap(p.ctaButton)

	assert.Equal(t, sell, p.Form().Leg(swap.Sell))
	assert.Equal(t, buy, p.Form().Leg(swap.Buy))
	assert.Equal(t, account, c.Account())
	assert.True(t, p.FormVisible())
	assert.False(t, p.HeroVisible())
}

func TestTokenSelectionUpdatesButton(t *testing.T) {
	p, _ := newTestPage(t)

	p.Form().SelectToken(swap.Sell, tokens.DefaultTokens()[1])

	assert.Equal(t, "USDC", p.tokenBtns[swap.Sell].Text)
	assert.Equal(t, "select a token", p.tokenBtns[swap.Buy].Text)
}

func TestReleaseStopsFollowingConnector(t *testing.T) {
	p, c := newTestPage(t)
	p.Release()
	p.Release()

	require.NoError(t, c.Connect(context.Background(), addrSOL))
	assert.True(t, p.HeroVisible())
}

func TestTokenPickerFilterAndChoose(t *testing.T) {
	w := newTestWindow(t)
	var got []tokens.Token
	picker := newTokenPicker(w, offlineRegistry(), zap.NewNop(), func(tok tokens.Token) {
		got = append(got, tok)
	})

	picker.setTokens(tokens.DefaultTokens())
	assert.Len(t, picker.shown, 6)

	picker.filter("jup")
	require.Len(t, picker.shown, 2)

	picker.choose(1)
	picker.choose(5)
	require.Len(t, got, 1)
	assert.Equal(t, "JLP", got[0].Symbol)
}

func TestTokenPickerKeepsQueryAcrossLoad(t *testing.T) {
	w := newTestWindow(t)
	picker := newTokenPicker(w, offlineRegistry(), zap.NewNop(), nil)
	w.SetContent(picker.search)

	test.Type(picker.search, "usd")
	assert.Empty(t, picker.shown)

	picker.load(context.Background())

	require.Len(t, picker.shown, 2)
	assert.Equal(t, "USDC", picker.shown[0].Symbol)
	assert.Equal(t, "USDT", picker.shown[1].Symbol)
}

func TestTokenPickerLoad(t *testing.T) {
	w := newTestWindow(t)
	picker := newTokenPicker(w, offlineRegistry(), zap.NewNop(), nil)

	picker.load(context.Background())

	assert.Len(t, picker.shown, len(tokens.DefaultTokens()))
	assert.Equal(t, "6 tokens", picker.status.Text)
}
