package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toggle is one on/off preference on the settings screen
type toggle struct {
	label string
	on    bool
}

// settingsState is session-local; nothing on this screen is persisted
type settingsState struct {
	online   bool
	lastSync time.Time
	toggles  []toggle
	selected int
}

func newSettingsState(now time.Time) settingsState {
	return settingsState{
		online:   true,
		lastSync: now,
		toggles: []toggle{
			{label: "Wi-Fi only uploads", on: true},
			{label: "Auto call recording", on: true},
			{label: "Notifications", on: true},
			{label: "Haptic feedback", on: true},
			{label: "Auto sync", on: true},
		},
	}
}

var permissions = []string{"Phone", "Microphone", "Storage", "Notifications"}

func (m AppModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.settings.selected > 0 {
			m.settings.selected--
		}
	case "down", "j":
		if m.settings.selected < len(m.settings.toggles)-1 {
			m.settings.selected++
		}
	case " ", "enter":
		// toggles is shared with the previous model value, so copy before writing
		toggles := append([]toggle(nil), m.settings.toggles...)
		toggles[m.settings.selected].on = !toggles[m.settings.selected].on
		m.settings.toggles = toggles
	case "s":
		m.settings.lastSync = m.now()
		m.log.Debug("manual sync")
	case "o":
		m.settings.online = !m.settings.online
	}
	return m, nil
}

func (m AppModel) renderSettings() string {
	width := m.contentWidth() - 4
	var b strings.Builder

	b.WriteString(sectionTitle("Settings"))
	b.WriteString("\n\n")

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width)

	// Connection
	var conn strings.Builder
	if m.settings.online {
		conn.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("● Connected"))
	} else {
		conn.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("● Offline"))
	}
	conn.WriteString("\n")
	conn.WriteString(muted.Render("Last sync: " + m.settings.lastSync.Format("15:04:05")))
	b.WriteString(card.Render(conn.String()))
	b.WriteString("\n")

	// Preferences
	var prefs strings.Builder
	for i, t := range m.settings.toggles {
		state := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("[ off ]")
		if t.on {
			state = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true).Render("[ on  ]")
		}
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Width(width - 12)
		if i == m.settings.selected {
			label = label.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}
		prefs.WriteString(label.Render(t.label))
		prefs.WriteString(state)
		if i < len(m.settings.toggles)-1 {
			prefs.WriteString("\n")
		}
	}
	b.WriteString(card.Render(prefs.String()))
	b.WriteString("\n")

	// Permissions are informational
	var perms strings.Builder
	perms.WriteString(muted.Render("Permissions"))
	for _, p := range permissions {
		perms.WriteString("\n")
		perms.WriteString(lipgloss.NewStyle().Width(width - 12).Render(p))
		perms.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("granted"))
	}
	b.WriteString(card.Render(perms.String()))

	return b.String()
}
