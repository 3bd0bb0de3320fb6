// Package tui implements the interactive signal table browser.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/charliek/sigtab/internal/domain"
	"github.com/charliek/sigtab/internal/render"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
)

// Model is the bubbletea model for the browser
type Model struct {
	entries  []domain.Entry
	visible  []domain.Entry
	renderer *render.Renderer

	// source name -> index into sourceStyles
	sourceIndex map[string]int

	viewport  viewport.Model
	textInput textinput.Model

	mode   Mode
	filter string

	width  int
	height int
	ready  bool
}

// NewModel creates a browser over entries, which should already be sorted
func NewModel(entries []domain.Entry, opts render.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 64
	ti.Width = 30

	m := Model{
		entries:     entries,
		renderer:    render.New(opts),
		sourceIndex: make(map[string]int),
		textInput:   ti,
		mode:        ModeNormal,
	}
	for _, e := range entries {
		for _, o := range e.Origins {
			if _, ok := m.sourceIndex[o]; !ok {
				m.sourceIndex[o] = len(m.sourceIndex)
			}
		}
	}
	m.applyFilter()
	return m
}

// applyFilter recomputes the visible entries from the current filter
func (m *Model) applyFilter() {
	if m.filter == "" {
		m.visible = m.entries
	} else {
		m.visible = make([]domain.Entry, 0, len(m.entries))
		for _, e := range m.entries {
			if containsIgnoreCase(e.Short, m.filter) || containsIgnoreCase(e.Symbol, m.filter) {
				m.visible = append(m.visible, e)
			}
		}
	}
	m.updateViewport()
}

func (m *Model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
