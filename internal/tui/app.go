package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charliek/sigtab/internal/domain"
	"github.com/charliek/sigtab/internal/render"
)

// Run starts the browser and blocks until the user quits
func Run(entries []domain.Entry, opts render.Options) error {
	p := tea.NewProgram(NewModel(entries, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
