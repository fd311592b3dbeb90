package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/models"
	"github.com/balkashynov/dialr/internal/tabs"
)

// historyState is the call history screen's local state
type historyState struct {
	filter    history.Filter
	search    textinput.Model
	searching bool
	selected  int
}

func newHistoryState() historyState {
	search := textinput.New()
	search.Placeholder = "Search calls, contacts, notes..."
	search.CharLimit = 64
	search.Width = 40
	search.Prompt = "🔍 "
	search.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	search.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	search.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return historyState{filter: history.FilterAll, search: search}
}

// visibleCalls applies the selected filter and the search text
func (m AppModel) visibleCalls() []models.CallRecord {
	return m.calls.List(m.history.filter, m.history.search.Value())
}

// updateHistory handles keys on the history screen
func (m AppModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.history.searching {
		switch msg.String() {
		case "esc":
			m.history.searching = false
			m.history.search.SetValue("")
			m.history.search.Blur()
			m.history.selected = 0
			return m, nil
		case "enter":
			m.history.searching = false
			m.history.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.history.search, cmd = m.history.search.Update(msg)
		m.history.selected = 0
		return m, cmd
	}

	visible := m.visibleCalls()
	switch msg.String() {
	case "/":
		m.history.searching = true
		cmd := m.history.search.Focus()
		return m, cmd
	case "up", "k":
		if m.history.selected > 0 {
			m.history.selected--
		}
	case "down", "j":
		if m.history.selected < len(visible)-1 {
			m.history.selected++
		}
	case "right", "l", "f":
		m.history.filter = shiftFilter(m.history.filter, 1)
		m.history.selected = 0
	case "left", "h":
		m.history.filter = shiftFilter(m.history.filter, -1)
		m.history.selected = 0
	case "c":
		if m.history.selected < len(visible) {
			return m.dialBack(visible[m.history.selected].Number), nil
		}
	case "n":
		// Schedule a follow-up for the selected call
		if m.history.selected < len(visible) {
			m.follow = m.follow.openFromCall(visible[m.history.selected])
			_ = m.router.Select(tabs.FollowUps)
			return m, textinput.Blink
		}
	}
	return m, nil
}

func shiftFilter(f history.Filter, step int) history.Filter {
	all := history.Filters()
	for i, o := range all {
		if o == f {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return history.FilterAll
}

func (m AppModel) renderHistory() string {
	var b strings.Builder
	width := m.contentWidth() - 2

	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width - 2)
	if m.history.searching {
		searchBox = searchBox.BorderForeground(lipgloss.Color(ColorAccentMain))
	}
	b.WriteString(searchBox.Render(m.history.search.View()))
	b.WriteString("\n")

	// Filter bar with counts that ignore the search text
	counts := m.calls.Counts()
	var filters []string
	for _, f := range history.Filters() {
		label := fmt.Sprintf(" %s (%d) ", f.Label(), counts[f])
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		if f == m.history.filter {
			style = style.
				Bold(true).
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain))
		}
		filters = append(filters, style.Render(label))
	}
	b.WriteString(strings.Join(filters, " "))
	b.WriteString("\n\n")

	calls := m.visibleCalls()
	if len(calls) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No calls found"))
		return b.String()
	}

	now := m.now()
	for i, call := range calls {
		b.WriteString(m.renderCallCard(call, i == m.history.selected, width-2, now))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderCallCard(call models.CallRecord, selected bool, width int, now time.Time) string {
	var b strings.Builder

	icon, color := directionIcon(call.Direction)
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(icon))
	b.WriteString(" ")
	b.WriteString(nameStyle.Render(call.DisplayName()))
	b.WriteString(" ")
	b.WriteString(badge(string(call.Direction), color))
	b.WriteString("\n")

	if call.ContactName != "" {
		b.WriteString(mutedStyle.Render(call.Number))
		b.WriteString("\n")
	}

	meta := []string{history.FormatRelativeTime(call.Timestamp, now)}
	if call.DurationSeconds > 0 {
		meta = append(meta, history.FormatDuration(call.DurationSeconds))
	}
	if call.HasRecording {
		meta = append(meta, "▶ recording")
	}
	b.WriteString(mutedStyle.Render(strings.Join(meta, " · ")))

	if call.Notes != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(ColorSecondaryText)).Render(call.Notes))
	}
	if tags := call.TagNames(); len(tags) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("#" + strings.Join(tags, " #")))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width)
	if selected {
		card = card.BorderForeground(lipgloss.Color(ColorAccentMain))
	}
	return card.Render(b.String())
}

func directionIcon(d models.Direction) (string, string) {
	switch d {
	case models.DirectionIncoming:
		return "↙", ColorIncoming
	case models.DirectionOutgoing:
		return "↗", ColorOutgoing
	case models.DirectionMissed:
		return "✕", ColorMissed
	}
	return "☎", ColorSecondaryText
}
