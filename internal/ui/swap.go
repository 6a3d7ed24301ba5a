package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"swapdesk/internal/swap"
	"swapdesk/internal/tokens"
	"swapdesk/internal/wallet"
)

const heroTitle = "Swap token anytime, at your convenience."

// SwapPage shows the hero, plus the swap form once a wallet is connected.
type SwapPage struct {
	window    fyne.Window
	connector *wallet.Connector
	registry  *tokens.Registry
	form      *swap.Form
	log       *zap.Logger

	hero        *fyne.Container
	formSection *fyne.Container
	entries     map[swap.Side]*amountEntry
	tokenBtns   map[swap.Side]*TokenButton
	ctaButton   *widget.Button
	content     fyne.CanvasObject
	unsubscribe func()
}

func NewSwapPage(window fyne.Window, connector *wallet.Connector, registry *tokens.Registry, log *zap.Logger) *SwapPage {
	if log == nil {
		log = zap.NewNop()
	}
	p := &SwapPage{
		window:    window,
		connector: connector,
		registry:  registry,
		form:      swap.NewForm(),
		log:       log,
		entries:   make(map[swap.Side]*amountEntry),
		tokenBtns: make(map[swap.Side]*TokenButton),
	}

	heading := newHeading(heroTitle, 28)

	heroImage := canvas.NewImageFromResource(heroResource)
	heroImage.FillMode = canvas.ImageFillContain
	heroImage.SetMinSize(fyne.NewSize(560, 320))
	p.hero = container.NewCenter(heroImage)

	sellCard := newCard(container.NewVBox(
		container.NewBorder(nil, nil,
			newHeading("Sell", 32),
			newHeading("$0", 32),
		),
		p.newLegRow(swap.Sell),
	))
	buyCard := newCard(container.NewVBox(
		container.NewBorder(nil, nil, newHeading("Buy", 32), nil),
		p.newLegRow(swap.Buy),
	))

	rotate := widget.NewIcon(theme.ViewRefreshIcon())

	// no action is bound to the call to action
	p.ctaButton = widget.NewButton("Get Started", func() {})
	p.ctaButton.Importance = widget.HighImportance

	p.formSection = container.NewVBox(
		sellCard,
		container.NewCenter(rotate),
		buyCard,
		layout.NewSpacer(),
		p.ctaButton,
	)

	p.form.OnChange(func(leg swap.Leg) {
		if btn, ok := p.tokenBtns[leg.Side]; ok && btn.Text != leg.Label() {
			btn.SetText(leg.Label())
		}
	})

	p.content = container.NewVScroll(container.NewPadded(container.NewVBox(
		layout.NewSpacer(),
		container.NewPadded(heading),
		p.hero,
		p.formSection,
	)))

	p.render(connector.Account())
	p.unsubscribe = connector.Subscribe(p.render)
	return p
}

func (p *SwapPage) newLegRow(side swap.Side) fyne.CanvasObject {
	entry := newAmountEntry(side)
	entry.OnChanged = func(text string) {
		p.form.SetAmount(side, text)
	}
	p.entries[side] = entry

	picker := newTokenPicker(p.window, p.registry, p.log, func(token tokens.Token) {
		p.form.SelectToken(side, token)
	})
	btn := NewTokenButton(swap.SelectTokenText, picker.Show)
	p.tokenBtns[side] = btn

	return container.NewBorder(nil, nil, nil, btn, entry)
}

// render picks the branch for the account. While a connection is in
// progress neither branch is shown.
func (p *SwapPage) render(account wallet.Account) {
	if account.IsDisconnected() {
		p.hero.Show()
	} else {
		p.hero.Hide()
	}

	if account.IsConnected() {
		p.formSection.Show()
	} else {
		p.formSection.Hide()
	}

	p.log.Debug("swap page rendered",
		zap.Stringer("status", account.Status),
		zap.Bool("hero", p.hero.Visible()),
		zap.Bool("form", p.formSection.Visible()))
}

// Content returns the page's root object.
func (p *SwapPage) Content() fyne.CanvasObject { return p.content }

func (p *SwapPage) Form() *swap.Form { return p.form }

func (p *SwapPage) HeroVisible() bool { return p.hero.Visible() }

func (p *SwapPage) FormVisible() bool { return p.formSection.Visible() }

// Release stops following the connector.
func (p *SwapPage) Release() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}
