// Package tui is the full-screen portfolio page: a scrolling viewport of
// sections under a fixed header, with the animated hero, nav overlay,
// entrance reveals, and scroll progress wired into one Bubble Tea model.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/errors"
	"github.com/foliodev/folio/internal/theme"
)

// Run starts the portfolio TUI. Non-TTY stdout falls back to the static
// text rendering instead of a full-screen program.
func Run(cfg *config.Config, store *theme.Store) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return RunStatic(cfg, store, os.Stdout)
	}

	model := NewModel(cfg, store)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !cfg.UI.ReducedMotion {
		// Mouse tracking only matters for the hero attraction.
		opts = append(opts, tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "The portfolio UI crashed")
	}
	return nil
}
