package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	var b strings.Builder

	title := m.src.Title
	if m.loading {
		title += "  " + m.spinner.View() + "loading"
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(m.filter.View())
	b.WriteString(counterStyle.Render(fmt.Sprintf("  %d/%d", len(m.matches), len(m.entries))) + "\n\n")

	listHeight := m.height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	listWidth := m.width / 2
	if listWidth < 20 {
		listWidth = 20
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.listView(listHeight, listWidth),
		m.previewView(listHeight, m.width-listWidth-3),
	))

	b.WriteString("\n" + helpStyle.Render("enter: select • esc: cancel • ↑/↓: move"))
	return b.String()
}

func (m model) listView(height, width int) string {
	var rows []string

	// Keep the cursor inside the visible window.
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.matches) {
		end = len(m.matches)
	}

	for i := start; i < end; i++ {
		label := truncate(m.entries[m.matches[i]].Display, width-2)
		if i == m.cursor {
			rows = append(rows, selectedStyle.Render("▌ "+label))
		} else {
			rows = append(rows, itemStyle.Render("  "+label))
		}
	}
	if len(rows) == 0 && !m.loading {
		rows = append(rows, dimStyle.Render("  (no results)"))
	}

	for len(rows) < height {
		rows = append(rows, "")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}

func (m model) previewView(height, width int) string {
	if width < 10 {
		return ""
	}
	body := ""
	if entry, ok := m.highlighted(); ok && m.src.Preview != nil {
		body = m.src.Preview(entry)
	}
	return previewStyle.Width(width).Height(height).Render(body)
}

func truncate(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
