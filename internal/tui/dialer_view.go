package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/dialr/internal/dialer"
)

// dialPad is the key grid with the letters printed under each digit
var dialPad = [][2]string{
	{"1", ""}, {"2", "ABC"}, {"3", "DEF"},
	{"4", "GHI"}, {"5", "JKL"}, {"6", "MNO"},
	{"7", "PQRS"}, {"8", "TUV"}, {"9", "WXYZ"},
	{"*", ""}, {"0", "+"}, {"#", ""},
}

// updateDialer handles keys on the dialer screen
func (m AppModel) updateDialer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.IsActive() {
		switch msg.String() {
		case "enter", "e", "E":
			return m.endCall(), nil
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		return m.placeCall(), nil
	case "backspace":
		m.session.Backspace()
		return m, nil
	case "ctrl+u", "delete":
		m.session.Clear()
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if dialer.IsDialKey(r) {
				_ = m.session.AppendDigit(r)
			}
		}
	}
	return m, nil
}

func (m AppModel) renderDialer() string {
	width := m.contentWidth() - 2
	if m.session.IsActive() {
		return m.renderInCall(width)
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var number string
	if n := m.session.Number(); n != "" {
		number = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Render(n)
	} else {
		number = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("Enter phone number")
	}

	keyStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(7).
		Align(lipgloss.Center)
	lettersStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	var rows []string
	for i := 0; i < len(dialPad); i += 3 {
		var keys []string
		for _, key := range dialPad[i : i+3] {
			label := lipgloss.NewStyle().Bold(true).Render(key[0]) + "\n" + lettersStyle.Render(key[1])
			keys = append(keys, keyStyle.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	pad := lipgloss.JoinVertical(lipgloss.Center, rows...)

	callColor := ColorSuccess
	if strings.TrimSpace(m.session.Number()) == "" {
		callColor = ColorDisabledText
	}
	callButton := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(callColor)).
		Foreground(lipgloss.Color(callColor)).
		Bold(true).
		Padding(0, 3).
		Render("☎ Call")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		center.Render(number),
		"",
		center.Render(pad),
		"",
		center.Render(callButton),
	)
}

// renderInCall shows the number, a calling label and the running clock
func (m AppModel) renderInCall(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	numberStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	endButton := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorError)).
		Foreground(lipgloss.Color(ColorError)).
		Bold(true).
		Padding(0, 3).
		Render("✕ End call")

	elapsed := m.session.Elapsed(m.now())
	clock := renderBigClock(elapsed)
	var clockLines []string
	for _, line := range strings.Split(clock, "\n") {
		clockLines = append(clockLines, center.Render(line))
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		center.Render(numberStyle.Render(m.session.Number())),
		center.Render(pulseText("Calling...", int(elapsed.Seconds()))),
		"",
		strings.Join(clockLines, "\n"),
		"",
		center.Render(endButton),
	)
}

// bigDigits is 5-row block art for the call clock
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders d as mm:ss, or hh:mm:ss past the hour
func renderBigClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art := bigDigits[char]
		for i := range lines {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	out := make([]string, len(lines))
	for i := range lines {
		out[i] = clockStyle.Render(lines[i].String())
	}
	return strings.Join(out, "\n")
}
