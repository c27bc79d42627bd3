package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"diagnostic-canvas/internal/catalog"
	"diagnostic-canvas/internal/navigation"
	"diagnostic-canvas/internal/progress"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	stats := progress.Calculate(m.blocks, m.store.Answers())
	line := fmt.Sprintf("%s  %d%%  %d/%d respondidas",
		m.bar.ViewAs(stats.Ratio()), stats.Percent, stats.Filled, stats.Total)

	return m.styles.Header.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.title),
		line,
	))
}

func (m Model) footerView() string {
	lines := []string{m.styles.Help.Render(helpLine(m.dispatcher.Bindings()))}
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	return m.styles.Footer.Render(strings.Join(lines, "\n"))
}

// helpLine lists the first key of every binding.
func helpLine(bindings []navigation.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		key := b.Keys[0]
		switch key {
		case "down":
			key = "↓"
		case "up":
			key = "↑"
		}
		parts = append(parts, fmt.Sprintf("%s %s", key, b.Help))
	}
	return strings.Join(parts, " · ")
}

// renderCards renders every card and reports the line offset and height
// of each one inside the returned content.
func (m Model) renderCards() (string, []int, []int) {
	offsets := make([]int, len(m.blocks))
	heights := make([]int, len(m.blocks))
	rendered := make([]string, len(m.blocks))

	line := 0
	for i, b := range m.blocks {
		card := m.renderCard(b, b.ID == m.focus.ID())
		rendered[i] = card
		offsets[i] = line
		heights[i] = lipgloss.Height(card)
		line += heights[i]
	}
	return strings.Join(rendered, "\n"), offsets, heights
}

func (m Model) renderCard(b catalog.Block, focused bool) string {
	width := m.width - 2
	if width < MinCardWidth {
		width = MinCardWidth
	}
	inner := width - 4

	answer := m.store.Answer(b.ID)

	state := m.styles.Meta.Render("[ ] Pendiente")
	if m.store.IsCompleted(b.ID) {
		state = m.styles.Done.Render("[x] Completado")
	}
	heading := m.styles.CardHeading.Render(fmt.Sprintf("%s %s", b.Number, b.Title))
	gap := inner - lipgloss.Width(heading) - lipgloss.Width(state)
	if gap < 1 {
		gap = 1
	}

	var body string
	switch {
	case focused:
		body = m.editor.View()
	case strings.TrimSpace(answer) == "":
		body = m.styles.Placeholder.Render("Sin respuesta")
	default:
		body = m.styles.Answer.Width(inner).Render(answer)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		heading+strings.Repeat(" ", gap)+state,
		m.styles.Question.Width(inner).Render(b.Question),
		body,
		m.styles.Meta.Render(fmt.Sprintf("%d caracteres", utf8.RuneCountInString(answer))),
	)

	style := m.styles.Card
	switch {
	case focused:
		style = m.styles.CardFocused
	case m.MarkedComplete(b.ID):
		style = m.styles.CardComplete
	}
	return style.Width(width - 2).Render(content)
}

// MarkedComplete reports whether the card of id is highlighted as done:
// explicitly completed or carrying a non-blank answer.
func (m Model) MarkedComplete(id string) bool {
	return m.store.VisuallyComplete(id)
}
