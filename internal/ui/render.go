package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	b.WriteString(m.renderEvents())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the status line above the grid.
func (m Model) renderHeader() string {
	styles := m.s.theme.Styles()
	sep := styles.FaintText.Render("  |  ")

	logo := styles.Logo.Render("flipgrid")
	if m.ticking {
		logo += " " + styles.AccentText.Render(m.spin.View())
	}
	parts := []string{logo}

	if st := m.grid.SelectedState(); st != nil {
		side := st.CurrentSide().String()
		if st.InProgress() {
			side = fmt.Sprintf("%s -> %s", st.CurrentSide(), st.CurrentSide().Other())
			if st.OverridePending() {
				side += styles.WarningText.Render(" then " + st.TargetSide().String())
			}
		}
		parts = append(parts,
			styles.Text.Render(fmt.Sprintf("card %d/%d", m.grid.Selected()+1, len(m.s.states))),
			styles.InfoText.Render(side),
		)
	}

	if m.s.exclusive {
		parts = append(parts, styles.AccentText.Render("one open"))
	}
	parts = append(parts, styles.MutedText.Render(m.s.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderGrid lays the visible cards out row by row.
func (m Model) renderGrid() string {
	style := m.s.theme.Card()
	rows := m.grid.Cells()
	if len(rows) == 0 {
		return m.s.theme.Styles().MutedText.Render("no cards")
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		views := make([]string, 0, len(row))
		for _, cell := range row {
			views = append(views, cell.Card.View(style, cell.Selected))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderEvents renders the tail of the flip event log.
func (m Model) renderEvents() string {
	styles := m.s.theme.Styles()
	rule := styles.FaintText.Render(strings.Repeat("─", max(m.width, 1)))
	return rule + "\n" + styles.MutedText.Render(m.eventViewport.View())
}

// renderFooter renders key hints, or the jump prompt while it is open.
func (m Model) renderFooter() string {
	styles := m.s.theme.Styles()
	if m.jumping {
		return styles.Footer.Width(m.width).Render(m.jumpInput.View())
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, styles.AccentText.Render(h.Key)+" "+h.Desc)
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}
