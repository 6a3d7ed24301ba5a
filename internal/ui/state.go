package ui

import (
	"sync"
)

const (
	ViewSwap    = "swap"
	ViewWallets = "wallets"
)

var (
	globalState     *AppState
	globalStateLock sync.Mutex
)

type AppState struct {
	CurrentView string
}

func GetGlobalState() *AppState {
	globalStateLock.Lock()
	defer globalStateLock.Unlock()

	if globalState == nil {
		globalState = &AppState{}
	}
	return globalState
}

func (s *AppState) SetCurrentView(view string) {
	globalStateLock.Lock()
	defer globalStateLock.Unlock()

	s.CurrentView = view
}

func (s *AppState) GetCurrentView() string {
	globalStateLock.Lock()
	defer globalStateLock.Unlock()

	return s.CurrentView
}
