package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	ageStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

const chromeRows = 4 // title, search/status, blank, help

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("copycat — %d entries", m.store.Len())
	if m.favoritesOnly {
		title += "  [favorites]"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString(m.search.View())
	case m.search.Value() != "":
		b.WriteString(fmt.Sprintf("filter: %q (esc clears)", m.search.Value()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(emptyStyle.Render("nothing here — copy some text to get started"))
		b.WriteString("\n")
	} else {
		m.writeRows(&b)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter copy · f favorite · d delete · / search · tab favorites · ctrl+l clear · q quit"))
	return b.String()
}

func (m Model) writeRows(b *strings.Builder) {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = len(m.visible)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	selected, hasSelection := m.actions.Selected()

	for i := start; i < end; i++ {
		e := m.visible[i]

		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("› ")
		}
		fav := "  "
		if e.Favorite {
			fav = favoriteStyle.Render("★ ")
		}

		preview := sanitize(e.Preview(m.cfg.PreviewWidth))
		line := fmt.Sprintf("%-*s", m.cfg.PreviewWidth, preview)
		if hasSelection && e.ID == selected {
			line = selectedStyle.Render(line)
		}

		fmt.Fprintf(b, "%s%s%s  %s\n", marker, fav, line, ageStyle.Render(e.Age(m.now)))
	}
}

// sanitize flattens newlines and tabs so an entry always renders on one row.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}
