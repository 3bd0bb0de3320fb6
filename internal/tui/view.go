package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Width(m.width).Render(fmt.Sprintf("%-10s %-12s %s", "NAME", "SYMBOL", "SOURCES")))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())
	return sb.String()
}

// content renders one row per visible entry
func (m Model) content() string {
	if len(m.visible) == 0 {
		return noMatchStyle.Render(fmt.Sprintf("no signals match %q", m.filter))
	}

	var sb strings.Builder
	for i := range m.visible {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.formatEntry(i))
	}
	return sb.String()
}

func (m Model) formatEntry(i int) string {
	e := m.visible[i]

	sources := make([]string, 0, len(e.Origins))
	for _, o := range e.Origins {
		sources = append(sources, m.sourceStyle(o).Render(o))
	}

	return fmt.Sprintf("%s %s %s  %s",
		shortStyle.Render(fmt.Sprintf("%-10s", e.Short)),
		symbolStyle.Render(fmt.Sprintf("%-12s", e.Symbol)),
		strings.Join(sources, ","),
		dimStyle.Render(strings.TrimSpace(m.renderer.Line(e))))
}

func (m Model) sourceStyle(name string) lipgloss.Style {
	if i, ok := m.sourceIndex[name]; ok {
		return sourceStyles[i%len(sourceStyles)]
	}
	return lipgloss.NewStyle()
}

// statusBar renders the filter input or hint on the left and the counts on the right
func (m Model) statusBar() string {
	var left string
	switch {
	case m.mode == ModeFilter:
		left = "Filter: " + m.textInput.View()
	case m.filter != "":
		left = fmt.Sprintf("Filter: %s (ESC to clear)", m.filter)
	default:
		left = "/ filter | q quit"
	}

	right := fmt.Sprintf("%d/%d signals", len(m.visible), len(m.entries))

	leftWidth := m.width - len(right) - 4
	if leftWidth < 0 {
		leftWidth = 0
	}

	leftPart := statusStyle.Width(leftWidth).Render(left)
	rightPart := statusStyle.Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPart, "  ", rightPart)
}
