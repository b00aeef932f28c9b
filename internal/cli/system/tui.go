package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// automatic backup on startup, after the store loaded
	ctx.PerformAutomaticBackup()
	if ctx.Session == nil {
		ctx.StartSession()
	}

	p := tea.NewProgram(tui.NewModel(ctx.Tracker, ctx.Session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited: %w", err)
	}
	return nil
}
