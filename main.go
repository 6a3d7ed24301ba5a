package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapdesk/internal/config"
	"swapdesk/internal/logging"
	"swapdesk/internal/storage"
	"swapdesk/internal/tokens"
	"swapdesk/internal/ui"
	"swapdesk/internal/wallet"
)

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swapdesk",
		Short: "Desktop token swap front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	myApp := app.NewWithID(cfg.AppID)
	myWindow := myApp.NewWindow(cfg.Window.Title)

	connector := wallet.NewConnector(logger.Named("wallet"))
	registry := tokens.NewRegistry(cfg.TokenList.URL, cfg.TokenList.CacheTTL, cfg.TokenList.Timeout, logger.Named("tokens"))
	walletStore := storage.NewWalletStorage(myApp, cfg.Wallet.StorageDir)

	walletTabs := ui.NewWalletTabs(connector)
	walletManager := ui.NewWalletManager(myWindow, walletStore, connector, walletTabs, logger.Named("wallets"))
	swapPage := ui.NewSwapPage(myWindow, connector, registry, logger.Named("swap"))
	header := ui.NewHeader(cfg.Window.Title, connector)

	// Status bar for application-wide messages
	statusBar := widget.NewLabel("")
	statusBar.Alignment = fyne.TextAlignCenter

	mainContent := container.NewStack()

	content := container.NewBorder(
		header,
		container.NewVBox(
			walletTabs.Container(),
			statusBar,
		),
		nil,
		nil,
		mainContent,
	)

	sidebar := ui.NewSidebar()

	split := container.NewHSplit(sidebar, content)
	split.SetOffset(0.15)

	myWindow.SetContent(split)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	updateMainContent := func(newContent fyne.CanvasObject) {
		mainContent.RemoveAll()
		mainContent.Add(newContent)
	}

	sidebar.OnSwapClicked = func() {
		updateMainContent(swapPage.Content())
		ui.GetGlobalState().SetCurrentView(ui.ViewSwap)
		statusBar.SetText("")
	}

	sidebar.OnWalletsClicked = func() {
		updateMainContent(walletManager.NewWalletScreen())
		ui.GetGlobalState().SetCurrentView(ui.ViewWallets)
		statusBar.SetText("")
	}

	header.OnConnectClicked = func() {
		sidebar.OnWalletsClicked()
		statusBar.SetText("Select or add a wallet to connect")
	}

	connector.Subscribe(func(account wallet.Account) {
		if account.IsConnected() && ui.GetGlobalState().GetCurrentView() == ui.ViewWallets {
			sidebar.OnSwapClicked()
		}
	})

	// Start on the swap page
	sidebar.OnSwapClicked()

	if cfg.Wallet.AutoReconnect {
		ui.RememberSession(myApp.Preferences(), connector)
		if err := ui.RestoreSession(context.Background(), myApp.Preferences(), connector, logger); err != nil {
			logger.Warn("could not restore wallet session", zap.Error(err))
			statusBar.SetText(fmt.Sprintf("Could not restore wallet: %v", err))
		}
	}

	logger.Info("starting swapdesk", zap.String("app_id", cfg.AppID))
	myWindow.ShowAndRun()
	return nil
}
