package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/tui"
)

type InitCmd struct{}

// RunInit initializes durable storage. It is invoked from main before
// the store is constructed, since there is nothing to load yet.
func RunInit(provider storage.Provider) error {
	if err := provider.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at %s\n", variantName(provider), provider.Path())
	return nil
}

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func variantName(provider storage.Provider) string {
	if _, ok := provider.(*storage.JSONStore); ok {
		return "JSON"
	}
	return "SQLite"
}
