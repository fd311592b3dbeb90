package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/dialr/internal/history"
)

func (m AppModel) renderProfile() string {
	width := m.contentWidth() - 4
	var b strings.Builder

	b.WriteString(sectionTitle("Profile"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Width(8)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	var user strings.Builder
	user.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Render(m.profile.Name))
	user.WriteString("\n")
	user.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(m.profile.Role))
	user.WriteString("\n\n")
	user.WriteString(labelStyle.Render("Email") + valueStyle.Render(m.profile.Email))
	user.WriteString("\n")
	user.WriteString(labelStyle.Render("Phone") + valueStyle.Render(m.profile.Phone))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width)
	b.WriteString(card.Render(user.String()))
	b.WriteString("\n\n")

	// Stats are computed from the stores on every render
	stats := [][2]string{
		{"Total calls", fmt.Sprintf("%d", m.calls.Len())},
		{"Talk time", history.FormatTalkTime(m.calls.TotalDuration())},
		{"Follow-ups", fmt.Sprintf("%d", m.followUps.Len())},
		{"Recordings", fmt.Sprintf("%d", m.calls.RecordingCount())},
	}

	cellWidth := width/len(stats) - 2
	var cells []string
	for _, s := range stats {
		value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render(s[1])
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(s[0])
		cell := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(value + "\n" + label)
		cells = append(cells, cell)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	return b.String()
}
