package ui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"swapdesk/internal/tokens"
)

// TokenButton opens the token picker for one leg of the swap.
type TokenButton struct {
	widget.Button
}

func NewTokenButton(text string, tapped func()) *TokenButton {
	b := &TokenButton{}
	b.Text = text
	b.Icon = theme.MenuDropDownIcon()
	b.IconPlacement = widget.ButtonIconTrailingText
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

// tokenPicker is the modal listing tokens from the registry.
type tokenPicker struct {
	window   fyne.Window
	registry *tokens.Registry
	log      *zap.Logger
	onSelect func(tokens.Token)

	mu    sync.Mutex
	all   []tokens.Token
	shown []tokens.Token
	query string

	search *widget.Entry
	list   *widget.List
	status *widget.Label
	dialog dialog.Dialog
}

func newTokenPicker(window fyne.Window, registry *tokens.Registry, log *zap.Logger, onSelect func(tokens.Token)) *tokenPicker {
	p := &tokenPicker{
		window:   window,
		registry: registry,
		log:      log,
		onSelect: onSelect,
		status:   widget.NewLabel(""),
	}

	p.search = widget.NewEntry()
	p.search.SetPlaceHolder("Search name or paste address")
	p.search.OnChanged = p.filter

	p.list = widget.NewList(
		func() int {
			p.mu.Lock()
			defer p.mu.Unlock()
			return len(p.shown)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil,
				widget.NewLabelWithStyle("SYMBOL", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				nil,
				widget.NewLabel("Token name"),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			p.mu.Lock()
			if id >= len(p.shown) {
				p.mu.Unlock()
				return
			}
			token := p.shown[id]
			p.mu.Unlock()

			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(token.Name)
			row.Objects[1].(*widget.Label).SetText(token.Symbol)
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.choose(id)
		p.list.UnselectAll()
	}

	return p
}

// Show opens the picker and loads the token list in the background.
func (p *tokenPicker) Show() {
	p.search.SetText("")
	p.status.SetText("Loading tokens...")

	content := container.NewBorder(
		container.NewVBox(p.search, p.status),
		nil, nil, nil,
		p.list,
	)
	p.dialog = dialog.NewCustom("Select a token", "Close", content, p.window)
	p.dialog.Resize(fyne.NewSize(420, 520))
	p.dialog.Show()

	go p.load(context.Background())
}

func (p *tokenPicker) load(ctx context.Context) {
	list, err := p.registry.Tokens(ctx)
	p.setTokens(list)
	if err != nil {
		p.log.Warn("using fallback token list", zap.Error(err))
		p.status.SetText(fmt.Sprintf("Showing cached tokens: %v", err))
		return
	}
	p.status.SetText(fmt.Sprintf("%d tokens", len(list)))
}

// setTokens replaces the list and reapplies the last query typed into search.
func (p *tokenPicker) setTokens(list []tokens.Token) {
	p.mu.Lock()
	p.all = list
	p.shown = tokens.Search(p.all, p.query)
	p.mu.Unlock()
	p.list.Refresh()
}

func (p *tokenPicker) filter(query string) {
	p.mu.Lock()
	p.query = query
	p.shown = tokens.Search(p.all, query)
	p.mu.Unlock()
	p.list.Refresh()
}

func (p *tokenPicker) choose(id widget.ListItemID) {
	p.mu.Lock()
	if id < 0 || id >= len(p.shown) {
		p.mu.Unlock()
		return
	}
	token := p.shown[id]
	p.mu.Unlock()

	p.log.Debug("token selected", zap.String("symbol", token.Symbol), zap.String("mint", token.Address))
	if p.onSelect != nil {
		p.onSelect(token)
	}
	if p.dialog != nil {
		p.dialog.Hide()
	}
}
