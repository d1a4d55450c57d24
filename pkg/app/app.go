package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbellini/forkful/pkg/app/screens"
	"github.com/mbellini/forkful/pkg/store"
)

type App struct {
	store     *store.Store
	exportDir string
}

func NewApp(st *store.Store, exportDir string) *App {
	return &App{store: st, exportDir: exportDir}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.store, a.exportDir)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
